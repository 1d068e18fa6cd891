// Package main implements the performance-analysis driver: it sweeps every
// algorithm/heuristic combination over a position and reports node counts
// and timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tictactoe/internal/analysis"
	"tictactoe/internal/board"
	"tictactoe/internal/core"
	"tictactoe/internal/storage"
)

func main() {
	var (
		grid        = flag.String("grid", board.EmptyGrid, "Position to analyze (e.g. XX./OO./...)")
		side        = flag.String("side", "", "Side to move (X or O, default: derived from grid)")
		storagePath = flag.String("storage-path", "", "Record runs to this SQLite database file")
		dev         = flag.Bool("dev", false, "Development mode for storage (WAL)")
	)
	flag.Parse()

	b, err := board.Parse(*grid)
	if err != nil {
		log.Fatalf("Invalid grid: %v", err)
	}
	if b.IsTerminal() {
		log.Fatalf("Position %s is terminal, nothing to analyze", b.Grid())
	}

	toMove := b.SideToMove()
	if *side != "" {
		m, ok := core.ParseMark(*side)
		if !ok || m == core.MarkNone {
			log.Fatalf("Invalid side: %q (use X or O)", *side)
		}
		toMove = m
	}

	runs, err := analysis.Sweep(b, toMove)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Print(analysis.FormatReport(runs))

	if *storagePath == "" {
		return
	}

	// Persist the runs
	store, err := storage.NewStore(*storagePath, *dev)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	if err := store.InitDB(); err != nil {
		store.Close()
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	now := time.Now().UTC()
	for _, r := range runs {
		store.RecordRun(storage.AnalysisRecord{
			Grid:       r.Grid,
			SideToMove: r.SideToMove,
			Algorithm:  r.Algorithm,
			Heuristic:  r.Heuristic,
			BestMove:   r.BestMove,
			Value:      r.Value,
			Nodes:      r.Nodes,
			ElapsedNS:  int64(r.Elapsed),
			RunTimeUTC: now,
		})
	}

	// Close drains the async write queue
	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: storage close: %v\n", err)
		return
	}
	fmt.Printf("\nRecorded %d runs to %s\n", len(runs), *storagePath)
}
