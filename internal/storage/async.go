package storage

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// asyncQueueSize bounds the writes waiting for the background worker.
const asyncQueueSize = 256

var (
	// ErrQueueFull is returned when a write cannot be queued without blocking.
	ErrQueueFull = errors.New("storage: write queue full")
	// ErrClosed is returned for writes after Close.
	ErrClosed = errors.New("storage: store closed")
)

// AsyncStore queues Set and SaveScore onto one background worker so callers
// never wait on the backend. Writes are applied in call order. Reads and
// TopScores go straight to the wrapped store and may miss queued writes.
type AsyncStore struct {
	Store
	logger *log.Logger

	mu     sync.RWMutex
	closed bool
	jobs   chan func() error
	done   chan struct{}
}

// NewAsync wraps s. Failed background writes are logged to logger.
func NewAsync(s Store, logger *log.Logger) *AsyncStore {
	a := &AsyncStore{
		Store:  s,
		logger: logger,
		jobs:   make(chan func() error, asyncQueueSize),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *AsyncStore) run() {
	defer close(a.done)
	for job := range a.jobs {
		if err := job(); err != nil {
			a.logger.Warn("background write failed", "error", err)
		}
	}
}

// enqueue hands job to the worker without blocking.
func (a *AsyncStore) enqueue(job func() error) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrClosed
	}
	select {
	case a.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Set queues the write and returns immediately.
func (a *AsyncStore) Set(key, value string) error {
	return a.enqueue(func() error {
		return a.Store.Set(key, value)
	})
}

// SaveScore queues the entry and returns immediately. The returned ID is
// always 0 since the row does not exist yet.
func (a *AsyncStore) SaveScore(entry ScoreEntry) (int64, error) {
	return 0, a.enqueue(func() error {
		_, err := a.Store.SaveScore(entry)
		return err
	})
}

// Close drains the queue, then closes the wrapped store.
func (a *AsyncStore) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.jobs)
	a.mu.Unlock()

	<-a.done
	return a.Store.Close()
}
