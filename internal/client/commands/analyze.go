package commands

import (
	"fmt"
	"strconv"

	"tictactoe/internal/client/display"
)

func (r *Registry) registerAnalysisCommands() {
	r.Register(&Command{
		Name:        "analyze",
		ShortName:   "a",
		Description: "Run engine analysis on a position",
		Usage:       "analyze [grid] (default: empty board)",
		Handler:     analyzeHandler,
	})

	r.Register(&Command{
		Name:        "history",
		ShortName:   "y",
		Description: "Show persisted analysis runs",
		Usage:       "history [grid] [limit]",
		Handler:     analysisHistoryHandler,
	})
}

func analyzeHandler(s Session, args []string) error {
	grid := ""
	if len(args) > 0 {
		grid = args[0]
	}

	c := s.GetClient()
	resp, err := c.Analyze(grid)
	if err != nil {
		return err
	}

	fmt.Printf("\n%sAnalysis:%s\n", display.Cyan, display.Reset)
	fmt.Println(resp.Report)
	return nil
}

func analysisHistoryHandler(s Session, args []string) error {
	grid := ""
	limit := 20
	if len(args) > 0 {
		grid = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid limit: %s", args[1])
		}
		limit = n
	}

	c := s.GetClient()
	resp, err := c.AnalysisHistory(grid, limit)
	if err != nil {
		return err
	}

	if len(resp.Runs) == 0 {
		fmt.Printf("%sNo analysis runs recorded%s\n", display.Yellow, display.Reset)
		return nil
	}

	fmt.Printf("\n%sRecent analysis runs:%s\n", display.Cyan, display.Reset)
	for _, r := range resp.Runs {
		fmt.Printf("  %s %s/%s: move %d value %d, %d nodes\n",
			r.Grid, r.Algorithm, r.Heuristic, r.BestMove, r.Value, r.Nodes)
	}
	return nil
}
