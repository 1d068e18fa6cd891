package board

import (
	"errors"
	"fmt"
	"strings"

	"tictactoe/internal/core"
)

// Cells is the number of cells on the board, indexed 0..8 row-major:
//
//	0 | 1 | 2
//	--+---+--
//	3 | 4 | 5
//	--+---+--
//	6 | 7 | 8
const Cells = 9

// Lines are the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// EmptyGrid is the grid text form of the starting position.
const EmptyGrid = ".../.../..."

var ErrInvalidMove = errors.New("invalid move")

// Board holds the 3x3 grid. The zero value is an empty board.
// A Board must not be shared between concurrent searches; use Clone.
type Board struct {
	cells [Cells]core.Mark
}

func New() *Board {
	return &Board{}
}

// Parse builds a board from its grid text form: three rows of 'X'/'O'/'.'
// joined by '/' (e.g. "XX./OO./..."), or the bare 9-character form.
// The mark counts must be reachable from an empty board (X moves first,
// alternation is strict).
func Parse(grid string) (*Board, error) {
	flat := strings.ReplaceAll(grid, "/", "")
	if len(flat) != Cells {
		return nil, fmt.Errorf("invalid grid %q: expected %d cells, got %d", grid, Cells, len(flat))
	}

	b := &Board{}
	var xCount, oCount int
	for i := 0; i < Cells; i++ {
		switch flat[i] {
		case 'X', 'x':
			b.cells[i] = core.MarkX
			xCount++
		case 'O', 'o':
			b.cells[i] = core.MarkO
			oCount++
		case '.', ' ', '_':
			b.cells[i] = core.MarkNone
		default:
			return nil, fmt.Errorf("invalid grid %q: bad cell %q at index %d", grid, flat[i], i)
		}
	}

	if diff := xCount - oCount; diff != 0 && diff != 1 {
		return nil, fmt.Errorf("invalid grid %q: %d X vs %d O is unreachable", grid, xCount, oCount)
	}

	return b, nil
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Cell returns the mark at index i (0..8).
func (b *Board) Cell(i int) core.Mark {
	return b.cells[i]
}

// LegalMoves returns all empty cell indices in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Cells)
	for i := 0; i < Cells; i++ {
		if b.cells[i] == core.MarkNone {
			moves = append(moves, i)
		}
	}
	return moves
}

// Apply places m at the given cell. The cell must be empty.
func (b *Board) Apply(move int, m core.Mark) error {
	if move < 0 || move >= Cells {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidMove, move)
	}
	if m != core.MarkX && m != core.MarkO {
		return fmt.Errorf("%w: no player mark", ErrInvalidMove)
	}
	if b.cells[move] != core.MarkNone {
		return fmt.Errorf("%w: cell %d is occupied", ErrInvalidMove, move)
	}
	b.cells[move] = m
	return nil
}

// Undo clears the given cell. The caller must only undo the most recently
// applied, not-yet-undone move.
func (b *Board) Undo(move int) error {
	if move < 0 || move >= Cells {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidMove, move)
	}
	if b.cells[move] == core.MarkNone {
		return fmt.Errorf("%w: cell %d is already empty", ErrInvalidMove, move)
	}
	b.cells[move] = core.MarkNone
	return nil
}

// Winner returns the mark occupying any complete line, or MarkNone.
func (b *Board) Winner() core.Mark {
	for _, ln := range Lines {
		m := b.cells[ln[0]]
		if m != core.MarkNone && m == b.cells[ln[1]] && m == b.cells[ln[2]] {
			return m
		}
	}
	return core.MarkNone
}

func (b *Board) IsFull() bool {
	for i := 0; i < Cells; i++ {
		if b.cells[i] == core.MarkNone {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the game has ended (win or full board).
func (b *Board) IsTerminal() bool {
	return b.Winner() != core.MarkNone || b.IsFull()
}

// SideToMove derives the next player from the mark counts (X moves first).
func (b *Board) SideToMove() core.Mark {
	var xCount, oCount int
	for i := 0; i < Cells; i++ {
		switch b.cells[i] {
		case core.MarkX:
			xCount++
		case core.MarkO:
			oCount++
		}
	}
	if xCount == oCount {
		return core.MarkX
	}
	return core.MarkO
}

// State maps the board to a game state.
func (b *Board) State() core.State {
	switch b.Winner() {
	case core.MarkX:
		return core.StateXWins
	case core.MarkO:
		return core.StateOWins
	}
	if b.IsFull() {
		return core.StateDraw
	}
	return core.StateOngoing
}

// Grid returns the canonical text form, e.g. "XX./OO./...".
func (b *Board) Grid() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < 3; col++ {
			sb.WriteString(b.cells[row*3+col].String())
		}
	}
	return sb.String()
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteString(fmt.Sprintf(" %s | %s | %s\n",
			b.cells[row*3], b.cells[row*3+1], b.cells[row*3+2]))
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}
	return sb.String()
}
