package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []struct {
		score, level, lines int
	}{
		{1200, 3, 22},
		{400, 1, 4},
		{5600, 6, 51},
	}
	for _, s := range sessions {
		if _, err := store.SaveScore("tetris", s.score, s.level, s.lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("got %d entries, want 3", len(scores))
	}

	// Ordered by score descending
	if scores[0].Score != 5600 || scores[1].Score != 1200 || scores[2].Score != 400 {
		t.Errorf("wrong order: %d, %d, %d", scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].Level != 6 || scores[0].Lines != 51 {
		t.Errorf("entry detail = level %d lines %d, want 6/51", scores[0].Level, scores[0].Lines)
	}
	if scores[0].GameID != "tetris" {
		t.Errorf("game id = %q", scores[0].GameID)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveScore("tetris", i*100, 1, i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("got %d entries, want 10", len(scores))
	}
	if scores[0].Score != 1500 {
		t.Errorf("top score = %d, want 1500", scores[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, want 0", high)
	}

	store.SaveScore("tetris", 300, 1, 3)
	store.SaveScore("tetris", 900, 2, 12)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 900 {
		t.Errorf("high score = %d, want 900", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1, 1)
	store.SaveScore("tetris", 200, 1, 2)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("got %d entries after clear, want 0", len(scores))
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
