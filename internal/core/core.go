package core

// Mark identifies a cell owner or a player side.
type Mark byte

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// ParseMark converts a side name ("X" or "O", case-insensitive).
func ParseMark(s string) (Mark, bool) {
	switch s {
	case "X", "x":
		return MarkX, true
	case "O", "o":
		return MarkO, true
	}
	return MarkNone, false
}

func Opponent(m Mark) Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	}
	return MarkNone
}

type State int

const (
	StateOngoing State = iota
	StateXWins
	StateOWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateXWins:
		return "x_wins"
	case StateOWins:
		return "o_wins"
	case StateDraw:
		return "draw"
	default:
		return "ongoing"
	}
}
