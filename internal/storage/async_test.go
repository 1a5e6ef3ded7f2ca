package storage

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// gatedStore blocks every Set until release is closed.
type gatedStore struct {
	*MemoryStore
	entered chan struct{}
	release chan struct{}
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		MemoryStore: NewMemoryStore(),
		entered:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
}

func (g *gatedStore) Set(key, value string) error {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.release
	return g.MemoryStore.Set(key, value)
}

func TestAsyncStoreDoesNotWaitForBackend(t *testing.T) {
	backend := newGatedStore()
	s := NewAsync(backend, log.New(io.Discard))

	require.NoError(t, s.Set("flappyHighScore", "7"))
	<-backend.entered

	_, ok, err := backend.MemoryStore.Get("flappyHighScore")
	require.NoError(t, err)
	require.False(t, ok, "write should still be pending")

	close(backend.release)
	require.NoError(t, s.Close())

	v, ok, err := backend.MemoryStore.Get("flappyHighScore")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "7", v)
}

func TestAsyncStoreKeepsWriteOrder(t *testing.T) {
	backend := NewMemoryStore()
	s := NewAsync(backend, log.New(io.Discard))

	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, s.Set("flappyGamesPlayed", v))
	}
	_, err := s.SaveScore(ScoreEntry{Difficulty: "easy", Score: 4})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	v, _, err := backend.Get("flappyGamesPlayed")
	require.NoError(t, err)
	require.Equal(t, "3", v)

	top, err := backend.TopScores("", 0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, 4, top[0].Score)
}

func TestAsyncStoreQueueFull(t *testing.T) {
	backend := newGatedStore()
	s := NewAsync(backend, log.New(io.Discard))

	require.NoError(t, s.Set("k", "first"))
	<-backend.entered

	for i := 0; i < asyncQueueSize; i++ {
		require.NoError(t, s.Set("k", "queued"))
	}
	require.ErrorIs(t, s.Set("k", "dropped"), ErrQueueFull)

	close(backend.release)
	require.NoError(t, s.Close())
}

func TestAsyncStoreRejectsWritesAfterClose(t *testing.T) {
	s := NewAsync(NewMemoryStore(), log.New(io.Discard))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	require.ErrorIs(t, s.Set("k", "v"), ErrClosed)
	_, err := s.SaveScore(ScoreEntry{Score: 1})
	require.ErrorIs(t, err, ErrClosed)
}
