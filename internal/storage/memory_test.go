package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("flappyDifficulty", "hard"))
	v, ok, err := s.Get("flappyDifficulty")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hard", v)

	for _, score := range []int{3, 9, 1} {
		_, err := s.SaveScore(ScoreEntry{Difficulty: "easy", Score: score})
		require.NoError(t, err)
	}
	_, err = s.SaveScore(ScoreEntry{Difficulty: "hard", Score: 5})
	require.NoError(t, err)

	top, err := s.TopScores("easy", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, 9, top[0].Score)
	require.Equal(t, 3, top[1].Score)

	all, err := s.TopScores("", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestNamespaceIsolatesRecords(t *testing.T) {
	shared := NewMemoryStore()
	alice := Namespace(shared, "alice")
	bob := Namespace(shared, "bob")

	require.NoError(t, alice.Set("flappyHighScore", "10"))
	require.NoError(t, bob.Set("flappyHighScore", "3"))

	v, _, _ := alice.Get("flappyHighScore")
	require.Equal(t, "10", v)
	v, _, _ = bob.Get("flappyHighScore")
	require.Equal(t, "3", v)

	_, ok, _ := shared.Get("flappyHighScore")
	require.False(t, ok, "namespaced writes must not leak into the bare key")

	_, err := bob.SaveScore(ScoreEntry{Score: 3})
	require.NoError(t, err)
	top, err := alice.TopScores("", 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "bob", top[0].Player)

	require.NoError(t, alice.Close())
	require.NoError(t, shared.Set("still", "open"))

	require.Same(t, Store(shared), Namespace(shared, ""))
}
