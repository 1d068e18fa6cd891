package engine

import (
	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

// Initial window bounds, outside the value range of both heuristics
// (H1 is within ±1, H2 within ±8).
const (
	alphaFloor = -10
	betaCeil   = 10
)

// alphabetaValue is minimaxValue with an (alpha, beta) pruning window: at a
// maximizing node alpha tracks the best value found so far, and once
// alpha >= beta the remaining siblings cannot change the parent's choice and
// are skipped; symmetric at minimizing nodes with beta. Best-move decisions
// and values are identical to minimaxValue, only the node count differs.
func alphabetaValue(b *board.Board, toMove, root core.Mark, h Heuristic, alpha, beta int) (value, nodes int) {
	if b.IsTerminal() {
		return h.Evaluate(b, root), 1
	}

	nodes = 1
	maximizing := toMove == root
	first := true

	for _, mv := range b.LegalMoves() {
		_ = b.Apply(mv, toMove) // mv comes from LegalMoves
		v, n := alphabetaValue(b, core.Opponent(toMove), root, h, alpha, beta)
		_ = b.Undo(mv)

		nodes += n
		if first || (maximizing && v > value) || (!maximizing && v < value) {
			value = v
			first = false
		}

		if maximizing {
			if v > alpha {
				alpha = v
			}
		} else {
			if v < beta {
				beta = v
			}
		}
		if alpha >= beta {
			break
		}
	}
	return value, nodes
}
