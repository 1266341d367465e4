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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLevelsSolvedFreshDatabase(t *testing.T) {
	store := openTestStore(t)

	n, err := store.LevelsSolved()
	if err != nil {
		t.Fatalf("LevelsSolved() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh LevelsSolved() = %d, expected 0", n)
	}
}

func TestRecordSolveIncrementsProgress(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		solved, err := store.RecordSolve(SolveRecord{
			Mode:         "loop8",
			Width:        4,
			Height:       3,
			Moves:        10 * i,
			Duration:     time.Duration(i) * time.Second,
			JumbleChance: 0.2,
		})
		if err != nil {
			t.Fatalf("RecordSolve() #%d failed: %v", i, err)
		}
		if solved != i {
			t.Errorf("RecordSolve() #%d returned %d", i, solved)
		}
	}

	n, err := store.LevelsSolved()
	if err != nil {
		t.Fatalf("LevelsSolved() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("LevelsSolved() = %d, expected 3", n)
	}
}

func TestRecordSolveAssignsPuzzleID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordSolve(SolveRecord{Mode: "loop8", Width: 3, Height: 3, Moves: 4}); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}
	if _, err := store.RecordSolve(SolveRecord{PuzzleID: "fixed-id", Mode: "loop8", Width: 3, Height: 3, Moves: 5}); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}

	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 solves, got %d", len(recent))
	}
	if recent[0].PuzzleID != "fixed-id" {
		t.Errorf("newest solve should come first, got %q", recent[0].PuzzleID)
	}
	if len(recent[1].PuzzleID) != 36 {
		t.Errorf("generated puzzle ID %q is not a UUID", recent[1].PuzzleID)
	}
}

func TestRecordSolveDuplicateRollsBack(t *testing.T) {
	store := openTestStore(t)

	rec := SolveRecord{PuzzleID: "dup", Mode: "loop8", Width: 3, Height: 3, Moves: 1}
	if _, err := store.RecordSolve(rec); err != nil {
		t.Fatalf("first RecordSolve() failed: %v", err)
	}
	if _, err := store.RecordSolve(rec); err == nil {
		t.Fatal("duplicate puzzle ID should fail")
	}

	n, err := store.LevelsSolved()
	if err != nil {
		t.Fatalf("LevelsSolved() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("failed insert must not bump progress, got %d", n)
	}
}

func TestBestSolves(t *testing.T) {
	store := openTestStore(t)

	records := []SolveRecord{
		{Mode: "loop8", Width: 4, Height: 3, Moves: 30},
		{Mode: "loop8", Width: 4, Height: 3, Moves: 12, Duration: 9 * time.Second},
		{Mode: "loop8", Width: 4, Height: 3, Moves: 12, Duration: 5 * time.Second},
		{Mode: "loop8", Width: 5, Height: 5, Moves: 2},
	}
	for _, r := range records {
		if _, err := store.RecordSolve(r); err != nil {
			t.Fatalf("RecordSolve() failed: %v", err)
		}
	}

	best, err := store.BestSolves(4, 3, 2)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 results, got %d", len(best))
	}
	if best[0].Moves != 12 || best[0].Duration != 5*time.Second {
		t.Errorf("best[0] = %+v, expected 12 moves in 5s", best[0])
	}
	if best[1].Moves != 12 || best[1].Duration != 9*time.Second {
		t.Errorf("best[1] = %+v, expected 12 moves in 9s", best[1])
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Solves != 0 || empty.LevelsSolved != 0 || !empty.LastSolved.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, moves := range []int{10, 20, 30} {
		if _, err := store.RecordSolve(SolveRecord{
			Mode: "loop8", Width: 3, Height: 3, Moves: moves,
			Duration: time.Duration(moves) * time.Second,
		}); err != nil {
			t.Fatalf("RecordSolve() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Solves != 3 || stats.LevelsSolved != 3 {
		t.Errorf("counts = %d solves / %d solved, expected 3/3", stats.Solves, stats.LevelsSolved)
	}
	if stats.TotalMoves != 60 || stats.AvgMoves != 20 || stats.BestMoves != 10 {
		t.Errorf("moves = total %d avg %v best %d", stats.TotalMoves, stats.AvgMoves, stats.BestMoves)
	}
	if stats.Fastest != 10*time.Second {
		t.Errorf("Fastest = %v, expected 10s", stats.Fastest)
	}
}

func TestResetProgress(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordSolve(SolveRecord{Mode: "loop8", Width: 3, Height: 3, Moves: 7}); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}
	if err := store.ResetProgress(); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}

	n, err := store.LevelsSolved()
	if err != nil {
		t.Fatalf("LevelsSolved() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("LevelsSolved() after reset = %d", n)
	}
	recent, err := store.RecentSolves(0)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no solves after reset, got %d", len(recent))
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.RecordSolve(SolveRecord{Mode: "loop8", Width: 3, Height: 3, Moves: 3}); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	n, err := reopened.LevelsSolved()
	if err != nil {
		t.Fatalf("LevelsSolved() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("LevelsSolved() after reopen = %d, expected 1", n)
	}
}
