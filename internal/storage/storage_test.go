package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := NewStore(path, true)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.InitDB(); err != nil {
		s.Close()
		t.Fatalf("InitDB: %v", err)
	}
	return s, path
}

func sampleRecord(grid, algo string, nodes int) AnalysisRecord {
	return AnalysisRecord{
		Grid:       grid,
		SideToMove: "X",
		Algorithm:  algo,
		Heuristic:  "h1",
		BestMove:   0,
		Value:      0,
		Nodes:      nodes,
		ElapsedNS:  int64(5 * time.Millisecond),
		RunTimeUTC: time.Now().UTC(),
	}
}

func TestRecordAndQueryRuns(t *testing.T) {
	s, path := newTestStore(t)

	if !s.IsHealthy() {
		t.Fatal("fresh store should be healthy")
	}
	if err := s.RecordRun(sampleRecord(".../.../...", "minimax", 549945)); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordRun(sampleRecord("XX./OO./...", "alphabeta", 64)); err != nil {
		t.Fatal(err)
	}

	// Close drains the async write queue before the database shuts down.
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(path, true)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	runs, err := reopened.QueryRuns("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	filtered, err := reopened.QueryRuns("XX./OO./...", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 {
		t.Fatalf("got %d filtered runs, want 1", len(filtered))
	}
	r := filtered[0]
	if r.Algorithm != "alphabeta" || r.Nodes != 64 || r.SideToMove != "X" {
		t.Errorf("unexpected record: %+v", r)
	}

	limited, err := reopened.QueryRuns("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d limited runs, want 1", len(limited))
	}
}

func TestSchemaRejectsBadAlgorithm(t *testing.T) {
	s, path := newTestStore(t)

	bad := sampleRecord(".../.../...", "negamax", 1)
	if err := s.RecordRun(bad); err != nil {
		t.Fatal(err)
	}
	// The CHECK constraint fails inside the async writer and degrades health.
	s.Close()

	reopened, err := NewStore(path, true)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	runs, err := reopened.QueryRuns("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("constraint-violating record was persisted: %+v", runs)
	}
}
