package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteGetSet(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("flappyHighScore"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v; expected absent", ok, err)
	}

	if err := store.Set("flappyHighScore", "12"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("flappyHighScore", "31"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("flappyHighScore")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "31" {
		t.Errorf("Get() = %q, expected 31", v)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.Set("flappySoundVolume", "70"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if v, _, _ := reopened.Get("flappySoundVolume"); v != "70" {
		t.Errorf("value after reopen = %q, expected 70", v)
	}
}

func TestSQLiteTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{Difficulty: "easy", Score: 100},
		{Difficulty: "easy", Score: 50},
		{Difficulty: "hard", Score: 200},
		{Difficulty: "easy", Score: 75},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(all))
	}
	if all[0].Score != 200 || all[3].Score != 50 {
		t.Errorf("Scores not in descending order: %v", all)
	}

	easy, err := store.TopScores("easy", 2)
	if err != nil {
		t.Fatalf("TopScores(easy) failed: %v", err)
	}
	if len(easy) != 2 || easy[0].Score != 100 || easy[1].Score != 75 {
		t.Errorf("TopScores(easy, 2) = %v, expected 100, 75", easy)
	}
	if easy[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestOpenDispatch(t *testing.T) {
	mem, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	if _, ok := mem.(*MemoryStore); !ok {
		t.Errorf("Open(:memory:) returned %T", mem)
	}

	file, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	defer file.Close()
	if _, ok := file.(*SQLiteStore); !ok {
		t.Errorf("Open(file) returned %T", file)
	}
}
