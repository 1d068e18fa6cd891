// Package analysis sweeps every algorithm/heuristic combination over a
// position and reports node counts and timings, with alpha-beta measured
// against plain minimax.
package analysis

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
	"tictactoe/internal/engine"
)

// Run is one algorithm/heuristic measurement on a position.
type Run struct {
	Grid       string        `json:"grid"`
	SideToMove string        `json:"side_to_move"`
	Algorithm  string        `json:"algorithm"`
	Heuristic  string        `json:"heuristic"`
	BestMove   int           `json:"best_move"`
	Value      int           `json:"value"`
	Nodes      int           `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Sweep searches the position once per algorithm/heuristic combination,
// minimax then alphabeta for each heuristic. Each search runs on a private
// copy of the board.
func Sweep(b *board.Board, toMove core.Mark) ([]Run, error) {
	runs := make([]Run, 0, 4)
	for _, h := range []engine.Heuristic{engine.H1{}, engine.H2{}} {
		for _, algo := range []engine.Algorithm{engine.AlgorithmMinimax, engine.AlgorithmAlphaBeta} {
			res, err := engine.Search(b.Clone(), toMove, algo, h)
			if err != nil {
				return nil, fmt.Errorf("sweep %s/%s: %w", algo, h.Name(), err)
			}
			runs = append(runs, Run{
				Grid:       b.Grid(),
				SideToMove: toMove.String(),
				Algorithm:  string(algo),
				Heuristic:  h.Name(),
				BestMove:   res.BestMove,
				Value:      res.Value,
				Nodes:      res.Nodes,
				Elapsed:    res.Elapsed,
			})
		}
	}
	return runs, nil
}

// FormatReport renders the sweep as a table, followed by the pruning
// comparison for each heuristic (node reduction and speedup of alphabeta
// over minimax).
func FormatReport(runs []Run) string {
	var sb strings.Builder
	if len(runs) > 0 {
		fmt.Fprintf(&sb, "Position: %s (%s to move)\n\n", runs[0].Grid, runs[0].SideToMove)
	}

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HEURISTIC\tALGORITHM\tBEST MOVE\tVALUE\tNODES\tELAPSED")
	for _, r := range runs {
		move := fmt.Sprintf("%d", r.BestMove)
		if r.BestMove == engine.NoMove {
			move = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Heuristic, r.Algorithm, move, r.Value, r.Nodes, r.Elapsed)
	}
	w.Flush()

	byKey := make(map[string]Run, len(runs))
	for _, r := range runs {
		byKey[r.Heuristic+"/"+r.Algorithm] = r
	}
	for _, h := range []string{engine.HeuristicH1, engine.HeuristicH2} {
		mm, okMM := byKey[h+"/"+string(engine.AlgorithmMinimax)]
		ab, okAB := byKey[h+"/"+string(engine.AlgorithmAlphaBeta)]
		if !okMM || !okAB || mm.Nodes == 0 {
			continue
		}
		reduction := 100 * float64(mm.Nodes-ab.Nodes) / float64(mm.Nodes)
		fmt.Fprintf(&sb, "\n%s: alphabeta visited %d of %d nodes (%.1f%% reduction)",
			h, ab.Nodes, mm.Nodes, reduction)
		if ab.Elapsed > 0 {
			fmt.Fprintf(&sb, ", %.1fx speedup", float64(mm.Elapsed)/float64(ab.Elapsed))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
