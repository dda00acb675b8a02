package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Layout: "classic", Score: 100, Outcome: "lost", Ticks: 900, Seed: 1},
		{Layout: "classic", Score: 50, Outcome: "lost", Ticks: 300, Seed: 2},
		{Layout: "classic", Score: 475, Outcome: "cleared", Ticks: 5000, Seed: 3},
		{Layout: "wall", Score: 500, Outcome: "lost", Ticks: 100, Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 classic runs, got %d", len(top))
	}
	if top[0].Score != 475 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}
	if top[0].Outcome != "cleared" || top[0].Ticks != 5000 || top[0].Seed != 3 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Layout: "classic", Score: (i + 1) * 100, Outcome: "lost"})
	}

	top, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed layout, got %d", high)
	}

	store.SaveRun(Run{Layout: "classic", Score: 100, Outcome: "lost"})
	store.SaveRun(Run{Layout: "classic", Score: 300, Outcome: "lost"})
	store.SaveRun(Run{Layout: "classic", Score: 200, Outcome: "lost"})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Layout: "classic", Score: 100, Outcome: "lost"})
	store.SaveRun(Run{Layout: "pyramid", Score: 300, Outcome: "lost"})

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("classic", 10); len(runs) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("pyramid", 10); len(runs) != 1 {
		t.Error("Pyramid runs should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() on empty layout failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveRun(Run{Layout: "classic", Score: 100, Outcome: "lost"})
	store.SaveRun(Run{Layout: "classic", Score: 475, Outcome: "cleared"})
	store.SaveRun(Run{Layout: "wall", Score: 10, Outcome: "lost"})

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Cleared != 1 || stats.HighScore != 475 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 287.5 {
		t.Errorf("AvgScore = %v, expected 287.5", stats.AvgScore)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 layouts, got %d", len(all))
	}
	if all["wall"].Runs != 1 || all["wall"].Cleared != 0 {
		t.Errorf("Unexpected wall stats: %+v", all["wall"])
	}
}
