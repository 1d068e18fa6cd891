package engine

import (
	"fmt"
	"time"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

type Algorithm string

const (
	AlgorithmMinimax   Algorithm = "minimax"
	AlgorithmAlphaBeta Algorithm = "alphabeta"
)

// ParseAlgorithm resolves an algorithm by name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AlgorithmMinimax:
		return AlgorithmMinimax, nil
	case AlgorithmAlphaBeta:
		return AlgorithmAlphaBeta, nil
	}
	return "", fmt.Errorf("unknown algorithm: %q", name)
}

// NoMove is the BestMove value when the board has no legal move.
const NoMove = -1

type SearchResult struct {
	BestMove int
	Value    int
	Nodes    int
	Elapsed  time.Duration
}

// Search runs the chosen algorithm for the side to move and returns the best
// move, its value from the mover's perspective, and the number of nodes
// visited across all root-move subtrees. Ties are broken by the lowest cell
// index. The board is mutated during the search and restored before
// returning; it must not be shared with a concurrent search.
func Search(b *board.Board, toMove core.Mark, algo Algorithm, h Heuristic) (SearchResult, error) {
	if toMove != core.MarkX && toMove != core.MarkO {
		return SearchResult{}, fmt.Errorf("no side to move: %v", toMove)
	}
	if h == nil {
		return SearchResult{}, fmt.Errorf("no heuristic")
	}
	if algo != AlgorithmMinimax && algo != AlgorithmAlphaBeta {
		return SearchResult{}, fmt.Errorf("unknown algorithm: %q", algo)
	}

	start := time.Now()
	result := SearchResult{BestMove: NoMove}
	opponent := core.Opponent(toMove)
	first := true

	for _, mv := range b.LegalMoves() {
		_ = b.Apply(mv, toMove) // mv comes from LegalMoves

		var v, n int
		if algo == AlgorithmMinimax {
			v, n = minimaxValue(b, opponent, toMove, h)
		} else {
			v, n = alphabetaValue(b, opponent, toMove, h, alphaFloor, betaCeil)
		}
		_ = b.Undo(mv)

		result.Nodes += n
		if first || v > result.Value {
			result.Value = v
			result.BestMove = mv
			first = false
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// SelectMove picks the best move for the side to move, or NoMove when the
// board has no legal move (callers must treat that as "game already decided").
func SelectMove(b *board.Board, toMove core.Mark, algo Algorithm, h Heuristic) (int, error) {
	result, err := Search(b, toMove, algo, h)
	if err != nil {
		return NoMove, err
	}
	return result.BestMove, nil
}
