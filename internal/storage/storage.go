// Package storage persists the flappy record (high score, counters, preferences)
// as flat key/value pairs, plus a history of finished sessions.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store is a key/value record with a score history.
// Implementations must be safe for concurrent use; the SSH server shares one
// Store between sessions.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// SaveScore appends a finished session to the history and returns its ID.
	SaveScore(entry ScoreEntry) (int64, error)

	// TopScores returns the best scores, highest first. An empty difficulty
	// matches every difficulty.
	TopScores(difficulty string, limit int) ([]ScoreEntry, error)

	// Close releases the underlying resources.
	Close() error
}

// ScoreEntry is a single finished session.
type ScoreEntry struct {
	ID         int64
	Player     string
	Difficulty string
	Score      int
	CreatedAt  time.Time
}

const defaultTopLimit = 10

// Open opens the store described by dsn.
// postgres:// and postgresql:// URLs select PostgreSQL, ":memory:" an
// in-process store, anything else is a SQLite file path (~ is expanded).
func Open(dsn string) (Store, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(dsn)
	case dsn == ":memory:":
		return NewMemoryStore(), nil
	default:
		return OpenSQLite(dsn)
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// parseTime handles the datetime representations returned by the drivers.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
