package storage

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps everything in process memory. It backs sessions when no
// database can be opened and is handy in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	scores []ScoreEntry
	nextID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// SaveScore records a finished session.
func (s *MemoryStore) SaveScore(entry ScoreEntry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry.ID = s.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	s.scores = append(s.scores, entry)
	return entry.ID, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *MemoryStore) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	s.mu.RLock()
	matched := make([]ScoreEntry, 0, len(s.scores))
	for _, e := range s.scores {
		if difficulty == "" || e.Difficulty == difficulty {
			matched = append(matched, e)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
