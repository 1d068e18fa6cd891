package game

import (
	"fmt"
	"time"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

// NoMove marks a snapshot that was not created by a move (the initial
// position).
const NoMove = -1

type Snapshot struct {
	Grid         string    // Board state at this point
	PreviousMove int       // Cell index that created this position (NoMove for initial)
	NextTurn     core.Mark // Whose turn it is at this position
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      int
	Player    core.Mark
	GameState core.State
	Value     int
	Nodes     int
	Elapsed   time.Duration
}

type Game struct {
	snapshots  []Snapshot
	players    map[core.Mark]*core.Player
	state      core.State
	lastResult *MoveResult
}

func New(initialGrid string, xPlayer, oPlayer *core.Player, startingTurn core.Mark) *Game {
	return &Game{
		snapshots: []Snapshot{
			{
				Grid:         initialGrid,
				PreviousMove: NoMove,
				NextTurn:     startingTurn,
			},
		},
		players: map[core.Mark]*core.Player{
			core.MarkX: xPlayer,
			core.MarkO: oPlayer,
		},
		state: core.StateOngoing,
	}
}

func (g *Game) SetLastResult(result *MoveResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

func (g *Game) CurrentGrid() string {
	return g.CurrentSnapshot().Grid
}

func (g *Game) NextTurn() core.Mark {
	return g.CurrentSnapshot().NextTurn
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurn()]
}

func (g *Game) Player(mark core.Mark) *core.Player {
	return g.players[mark]
}

// UpdatePlayers replaces both players, keeping the position and history.
func (g *Game) UpdatePlayers(xPlayer, oPlayer *core.Player) {
	g.players[core.MarkX] = xPlayer
	g.players[core.MarkO] = oPlayer
}

func (g *Game) AddSnapshot(grid string, move int, nextTurn core.Mark) {
	g.snapshots = append(g.snapshots, Snapshot{
		Grid:         grid,
		PreviousMove: move,
		NextTurn:     nextTurn,
	})
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = core.StateOngoing // Reset game state when undoing
	g.lastResult = nil          // Clear last result
	return nil
}

func (g *Game) Moves() []int {
	moves := []int{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != NoMove {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) SetState(s core.State) {
	g.state = s
}

func (g *Game) InitialGrid() string {
	if len(g.snapshots) > 0 {
		return g.snapshots[0].Grid
	}
	return board.EmptyGrid
}
