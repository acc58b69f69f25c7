package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 500, time.UTC)
	store.now = func() time.Time { return fixed }

	run, err := store.SaveRun("alice", 7, 1234)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.ID == 0 || run.RunID == "" {
		t.Errorf("SaveRun() should assign identifiers, got %+v", run)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != "alice" || got.Score != 7 || got.Frames != 1234 {
		t.Errorf("RunByID() = %+v", got)
	}
	if !got.CreatedAt.Equal(fixed.Truncate(time.Second)) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, fixed.Truncate(time.Second))
	}

	missing, err := store.RunByID("does-not-exist")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreSaveRunDefaultPlayer(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun("", 3, 100)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.Player != DefaultPlayer {
		t.Errorf("Player = %q, expected %q", run.Player, DefaultPlayer)
	}
}

func TestStoreRunIDsUnique(t *testing.T) {
	store := openTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		run, err := store.SaveRun("p", i, i)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if seen[run.RunID] {
			t.Fatalf("duplicate run id %s", run.RunID)
		}
		seen[run.RunID] = true
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		score  int
	}{
		{"alice", 10}, {"bob", 30}, {"alice", 20}, {"carol", 30}, {"bob", 5},
	} {
		if _, err := store.SaveRun(s.player, s.score, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(top))
	}
	// Ties keep insertion order.
	if top[0].Player != "bob" || top[1].Player != "carol" || top[2].Score != 20 {
		t.Errorf("Scores not in expected order: %+v", top)
	}

	alice, err := store.TopScoresForPlayer("alice", 10)
	if err != nil {
		t.Fatalf("TopScoresForPlayer() failed: %v", err)
	}
	if len(alice) != 2 || alice[0].Score != 20 || alice[1].Score != 10 {
		t.Errorf("TopScoresForPlayer(alice) = %+v", alice)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun("alice", 100, 0)
	store.SaveRun("bob", 300, 0)
	store.SaveRun("alice", 200, 0)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	high, err = store.PlayerHighScore("alice")
	if err != nil {
		t.Fatalf("PlayerHighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("Expected alice's high score of 200, got %d", high)
	}
}

func TestStorePlayerStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	store.SaveRun("alice", 4, 400)
	store.SaveRun("alice", 8, 800)
	store.SaveRun("bob", 1, 100)

	stats, err := store.PlayerStats("alice")
	if err != nil {
		t.Fatalf("PlayerStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 8 || stats.AvgScore != 6 || stats.TotalFrames != 1200 {
		t.Errorf("PlayerStats(alice) = %+v", stats)
	}
	if !stats.LastPlayed.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, base.Add(2*time.Minute))
	}

	empty, err := store.PlayerStats("nobody")
	if err != nil {
		t.Fatalf("PlayerStats(nobody) failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("PlayerStats(nobody) = %+v", empty)
	}

	all, err := store.AllPlayerStats()
	if err != nil {
		t.Fatalf("AllPlayerStats() failed: %v", err)
	}
	if len(all) != 2 || all[0].Player != "alice" || all[1].Player != "bob" {
		t.Errorf("AllPlayerStats() = %+v", all)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("alice", 100, 0)
	store.SaveRun("alice", 200, 0)
	store.SaveRun("bob", 300, 0)

	// Clear only alice
	if err := store.ClearScores("alice"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if runs, _ := store.TopScoresForPlayer("alice", 10); len(runs) != 0 {
		t.Errorf("Expected 0 alice runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopScoresForPlayer("bob", 10); len(runs) != 1 {
		t.Error("bob's runs should not be affected by clearing alice")
	}

	// Clear everything
	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if runs, _ := store.TopScores(10); len(runs) != 0 {
		t.Errorf("Expected empty store, got %d runs", len(runs))
	}
}
