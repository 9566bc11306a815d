package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wallbreaker/internal/scores"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHallOfFame(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("fresh store should be empty, got %v", entries)
	}

	want := []scores.Entry{{Name: "B", Score: 80}, {Name: "D", Score: 80}, {Name: "A", Score: 50}}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	// Saving again replaces the previous content.
	if err := store.Save(want[:2]); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Load() = %v, expected %v", got, want[:2])
	}
}

func TestStoreBacksLedger(t *testing.T) {
	store := openTestStore(t)

	l := scores.NewLedger(store, scores.Options{})
	if _, err := l.Add("alice", 120); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := l.Add("bob", 300); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	reloaded := scores.NewLedger(store, scores.Options{})
	lines := reloaded.Lines()
	if len(lines) != 2 || lines[0] != "bob:300" || lines[1] != "alice:120" {
		t.Errorf("reloaded ledger = %v", lines)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{RunID: "r1", Pack: "classic", Level: 0, Name: "a", Score: 100},
		{RunID: "r2", Pack: "classic", Level: 2, Name: "b", Score: 450},
		{RunID: "r3", Pack: "custom", Level: 1, Name: "c", Score: -30},
	}
	for _, r := range runs {
		if err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	// Same run recorded again with a final score.
	if err := store.RecordRun(Run{RunID: "r1", Pack: "classic", Level: 3, Name: "a", Score: 500}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopRuns() returned %d runs, expected 2", len(top))
	}
	if top[0].RunID != "r1" || top[0].Score != 500 || top[0].Level != 3 {
		t.Errorf("top run = %+v, expected updated r1", top[0])
	}
	if top[1].RunID != "r2" {
		t.Errorf("second run = %+v, expected r2", top[1])
	}

	recent, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].RunID != "r3" {
		t.Errorf("RecentRuns() = %+v", recent)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 500 {
		t.Errorf("stats = %+v", stats)
	}
}
