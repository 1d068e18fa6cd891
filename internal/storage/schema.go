package storage

import "time"

// AnalysisRecord represents a row in the analysis_runs table
type AnalysisRecord struct {
	RunID      int64     `db:"run_id"`
	Grid       string    `db:"grid"`
	SideToMove string    `db:"side_to_move"`
	Algorithm  string    `db:"algorithm"`
	Heuristic  string    `db:"heuristic"`
	BestMove   int       `db:"best_move"`
	Value      int       `db:"value"`
	Nodes      int       `db:"nodes"`
	ElapsedNS  int64     `db:"elapsed_ns"`
	RunTimeUTC time.Time `db:"run_time_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	run_id INTEGER PRIMARY KEY AUTOINCREMENT,
	grid TEXT NOT NULL,
	side_to_move TEXT NOT NULL CHECK(side_to_move IN ('X', 'O')),
	algorithm TEXT NOT NULL CHECK(algorithm IN ('minimax', 'alphabeta')),
	heuristic TEXT NOT NULL CHECK(heuristic IN ('h1', 'h2')),
	best_move INTEGER NOT NULL,
	value INTEGER NOT NULL,
	nodes INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	run_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_analysis_runs_grid ON analysis_runs(grid);
CREATE INDEX IF NOT EXISTS idx_analysis_runs_time ON analysis_runs(run_time_utc);
`
