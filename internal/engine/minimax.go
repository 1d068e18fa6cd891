package engine

import (
	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

// minimaxValue evaluates the position with exhaustive full-depth search.
// It returns the game-theoretic value from the root player's perspective
// and the number of nodes visited (this node plus all descendants).
// The board is restored to its input state before returning.
func minimaxValue(b *board.Board, toMove, root core.Mark, h Heuristic) (value, nodes int) {
	if b.IsTerminal() {
		return h.Evaluate(b, root), 1
	}

	nodes = 1
	maximizing := toMove == root
	first := true

	for _, mv := range b.LegalMoves() {
		_ = b.Apply(mv, toMove) // mv comes from LegalMoves
		v, n := minimaxValue(b, core.Opponent(toMove), root, h)
		_ = b.Undo(mv)

		nodes += n
		if first || (maximizing && v > value) || (!maximizing && v < value) {
			value = v
			first = false
		}
	}
	return value, nodes
}
