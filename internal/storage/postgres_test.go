package storage

import (
	"fmt"
	"os"
	"testing"
	"time"
)

// Runs only when FLAPPY_TEST_POSTGRES holds a DSN for a disposable database.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("FLAPPY_TEST_POSTGRES")
	if dsn == "" {
		t.Skip("FLAPPY_TEST_POSTGRES not set")
	}

	store, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("OpenPostgres() failed: %v", err)
	}
	defer store.Close()

	key := fmt.Sprintf("test:%d", time.Now().UnixNano())
	if err := store.Set(key, "1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(key, "2"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	v, ok, err := store.Get(key)
	if err != nil || !ok || v != "2" {
		t.Fatalf("Get() = %q, %v, %v; expected 2", v, ok, err)
	}

	difficulty := key
	if _, err := store.SaveScore(ScoreEntry{Difficulty: difficulty, Score: 4}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{Difficulty: difficulty, Score: 8}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	top, err := store.TopScores(difficulty, 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 8 {
		t.Errorf("TopScores() = %v, expected [8 4]", top)
	}
}
