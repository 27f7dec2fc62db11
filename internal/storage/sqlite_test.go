package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
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
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndBest(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 10, Elapsed: 40.5, Resolution: "1400x800"},
		{Score: 25, Elapsed: 90.0, RecordRank: 1, Resolution: "1400x800"},
		{Score: 10, Elapsed: 30.25, RecordRank: 2, Resolution: "1280x720"},
		{Score: 3, Elapsed: 12.0},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns(3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(best))
	}
	if best[0].Score != 25 {
		t.Errorf("best score = %d, expected 25", best[0].Score)
	}
	// Equal scores order by shorter elapsed time.
	if best[1].Elapsed != 30.25 || best[2].Elapsed != 40.5 {
		t.Errorf("tie order wrong: %+v, %+v", best[1], best[2])
	}
	if best[1].Resolution != "1280x720" || best[1].RecordRank != 2 {
		t.Errorf("fields not round-tripped: %+v", best[1])
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(Run{Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(recent))
	}
	// Same-second inserts fall back to id order.
	if recent[0].Score != 5 || recent[1].Score != 4 {
		t.Errorf("expected newest first, got %d then %d", recent[0].Score, recent[1].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty db failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Score: 4, Elapsed: 10, RecordRank: 1})
	store.SaveRun(Run{Score: 8, Elapsed: 25})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 8 || stats.TotalFruits != 12 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, expected 6", stats.AvgScore)
	}
	if stats.LongestRun != 25 || stats.Records != 1 {
		t.Errorf("LongestRun/Records = %v/%d", stats.LongestRun, stats.Records)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Score: 1})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	res := fruitninja.Result{Score: 12, Elapsed: 61.5, RecordRank: 2, Width: 1920, Height: 1080}
	if err := store.RecordRun(res); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Score != 12 || got.Elapsed != 61.5 || got.RecordRank != 2 || got.Resolution != "1920x1080" {
		t.Errorf("run = %+v", got)
	}
}
