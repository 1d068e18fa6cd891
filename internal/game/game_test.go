package game

import (
	"testing"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

func newTestGame() *Game {
	x := core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, core.MarkX)
	o := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer}, core.MarkO)
	return New(board.EmptyGrid, x, o, core.MarkX)
}

func TestNewGame(t *testing.T) {
	g := newTestGame()
	if g.CurrentGrid() != board.EmptyGrid {
		t.Errorf("initial grid = %q", g.CurrentGrid())
	}
	if g.NextTurn() != core.MarkX {
		t.Errorf("initial turn = %v, want X", g.NextTurn())
	}
	if g.State() != core.StateOngoing {
		t.Errorf("initial state = %v", g.State())
	}
	if mv := g.CurrentSnapshot().PreviousMove; mv != NoMove {
		t.Errorf("initial snapshot previous move = %d, want NoMove", mv)
	}
	if len(g.Moves()) != 0 {
		t.Errorf("initial moves = %v, want empty", g.Moves())
	}
	if g.NextPlayer().Type != core.PlayerHuman {
		t.Errorf("next player type = %v, want human", g.NextPlayer().Type)
	}
}

func TestSnapshotHistory(t *testing.T) {
	g := newTestGame()
	g.AddSnapshot("X../.../...", 0, core.MarkO)
	g.AddSnapshot("X../O../...", 3, core.MarkX)

	if g.CurrentGrid() != "X../O../..." {
		t.Errorf("current grid = %q", g.CurrentGrid())
	}
	if g.NextTurn() != core.MarkX {
		t.Errorf("next turn = %v, want X", g.NextTurn())
	}
	moves := g.Moves()
	if len(moves) != 2 || moves[0] != 0 || moves[1] != 3 {
		t.Errorf("moves = %v, want [0 3]", moves)
	}
	if g.InitialGrid() != board.EmptyGrid {
		t.Errorf("initial grid = %q", g.InitialGrid())
	}
}

func TestUndoMoves(t *testing.T) {
	g := newTestGame()
	g.AddSnapshot("X../.../...", 0, core.MarkO)
	g.AddSnapshot("X../O../...", 3, core.MarkX)
	g.SetState(core.StateDraw)
	g.SetLastResult(&MoveResult{Move: 3, Player: core.MarkO})

	if err := g.UndoMoves(1); err != nil {
		t.Fatal(err)
	}
	if g.CurrentGrid() != "X../.../..." {
		t.Errorf("grid after undo = %q", g.CurrentGrid())
	}
	if g.NextTurn() != core.MarkO {
		t.Errorf("turn after undo = %v, want O", g.NextTurn())
	}
	if g.State() != core.StateOngoing {
		t.Errorf("state after undo = %v, want ongoing", g.State())
	}
	if g.LastResult() != nil {
		t.Error("last result not cleared by undo")
	}

	if err := g.UndoMoves(2); err == nil {
		t.Error("undo past initial position should fail")
	}
	if err := g.UndoMoves(0); err == nil {
		t.Error("undo count 0 should fail")
	}
}

func TestUpdatePlayers(t *testing.T) {
	g := newTestGame()
	oldX := g.Player(core.MarkX)

	x := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer, Algorithm: "minimax", Heuristic: "h1"}, core.MarkX)
	o := core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, core.MarkO)
	g.UpdatePlayers(x, o)

	if g.Player(core.MarkX).ID == oldX.ID {
		t.Error("replacing players should issue new IDs")
	}
	if g.Player(core.MarkX).Algorithm != "minimax" || g.Player(core.MarkX).Heuristic != "h1" {
		t.Errorf("X player config not applied: %+v", g.Player(core.MarkX))
	}
}
