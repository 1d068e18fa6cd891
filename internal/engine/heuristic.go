package engine

import (
	"fmt"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

// Heuristic scores a board from the root player's perspective: positive
// favors the root player, negative the opponent. Implementations must be
// pure and defined for every reachable board, terminal or not.
type Heuristic interface {
	Evaluate(b *board.Board, root core.Mark) int
	Name() string
}

const (
	HeuristicH1 = "h1"
	HeuristicH2 = "h2"
)

// H1 is the terminal win/loss/draw evaluation: +1 when the root player has
// won, -1 when the opponent has won, 0 otherwise (draw or non-terminal).
type H1 struct{}

func (H1) Name() string { return HeuristicH1 }

func (H1) Evaluate(b *board.Board, root core.Mark) int {
	switch b.Winner() {
	case root:
		return 1
	case core.Opponent(root):
		return -1
	}
	return 0
}

// H2 counts winning lines still open for each side and returns the
// difference M - O. A line is open for a player when it contains no
// opponent mark and either a mark of that player or only empty cells.
type H2 struct{}

func (H2) Name() string { return HeuristicH2 }

func (H2) Evaluate(b *board.Board, root core.Mark) int {
	opp := core.Opponent(root)
	var mine, theirs int
	for _, ln := range board.Lines {
		var rootMarks, oppMarks, empty int
		for _, i := range ln {
			switch b.Cell(i) {
			case root:
				rootMarks++
			case opp:
				oppMarks++
			default:
				empty++
			}
		}
		if oppMarks == 0 && (rootMarks > 0 || empty == 3) {
			mine++
		}
		if rootMarks == 0 && (oppMarks > 0 || empty == 3) {
			theirs++
		}
	}
	return mine - theirs
}

// ParseHeuristic resolves a heuristic by name ("h1" or "h2").
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case HeuristicH1:
		return H1{}, nil
	case HeuristicH2:
		return H2{}, nil
	}
	return nil, fmt.Errorf("unknown heuristic: %q", name)
}
