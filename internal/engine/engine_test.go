package engine

import (
	"math/rand"
	"testing"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

var (
	allAlgorithms = []Algorithm{AlgorithmMinimax, AlgorithmAlphaBeta}
	allHeuristics = []Heuristic{H1{}, H2{}}
)

func TestEmptyBoardNodeCounts(t *testing.T) {
	// Full-tree minimax visits the same nodes regardless of heuristic.
	// Alpha-beta counts depend on the heuristic's leaf values: H2's graded
	// scores produce earlier cutoffs than H1's win/loss/draw signal.
	cases := []struct {
		algo  Algorithm
		h     Heuristic
		nodes int
	}{
		{AlgorithmMinimax, H1{}, 549945},
		{AlgorithmMinimax, H2{}, 549945},
		{AlgorithmAlphaBeta, H1{}, 30709},
		{AlgorithmAlphaBeta, H2{}, 17945},
	}
	for _, c := range cases {
		res, err := Search(board.New(), core.MarkX, c.algo, c.h)
		if err != nil {
			t.Fatalf("%s/%s: %v", c.algo, c.h.Name(), err)
		}
		if res.Nodes != c.nodes {
			t.Errorf("%s/%s nodes = %d, want %d", c.algo, c.h.Name(), res.Nodes, c.nodes)
		}
		if res.BestMove != 0 {
			t.Errorf("%s/%s best move = %d, want 0 (ascending tie-break)", c.algo, c.h.Name(), res.BestMove)
		}
		if res.Value != 0 {
			t.Errorf("%s/%s value = %d, want 0 (drawn game)", c.algo, c.h.Name(), res.Value)
		}
	}
}

func TestImmediateWinScenario(t *testing.T) {
	// X,X,_ / O,O,_ / _,_,_ with X to move: index 2 wins on the spot for
	// every algorithm/heuristic combination.
	for _, algo := range allAlgorithms {
		for _, h := range allHeuristics {
			b := parseBoard(t, "XX./OO./...")
			res, err := Search(b, core.MarkX, algo, h)
			if err != nil {
				t.Fatalf("%s/%s: %v", algo, h.Name(), err)
			}
			if res.BestMove != 2 {
				t.Errorf("%s/%s best move = %d, want 2", algo, h.Name(), res.BestMove)
			}
			if res.Value != 1 {
				t.Errorf("%s/%s value = %d, want 1", algo, h.Name(), res.Value)
			}
		}
	}
}

func TestMidGameScenario(t *testing.T) {
	// X,O,_ / _,X,_ / _,_,O with O to move: O must block at 2 to hold the
	// draw.
	cases := []struct {
		algo  Algorithm
		h     Heuristic
		nodes int
	}{
		{AlgorithmMinimax, H1{}, 249},
		{AlgorithmMinimax, H2{}, 249},
		{AlgorithmAlphaBeta, H1{}, 169},
		{AlgorithmAlphaBeta, H2{}, 151},
	}
	for _, c := range cases {
		b := parseBoard(t, "XO./.X./..O")
		res, err := Search(b, core.MarkO, c.algo, c.h)
		if err != nil {
			t.Fatalf("%s/%s: %v", c.algo, c.h.Name(), err)
		}
		if res.BestMove != 2 {
			t.Errorf("%s/%s best move = %d, want 2", c.algo, c.h.Name(), res.BestMove)
		}
		if res.Value != 0 {
			t.Errorf("%s/%s value = %d, want 0", c.algo, c.h.Name(), res.Value)
		}
		if res.Nodes != c.nodes {
			t.Errorf("%s/%s nodes = %d, want %d", c.algo, c.h.Name(), res.Nodes, c.nodes)
		}
	}
}

// randomPosition plays up to n random plies and returns the board with the
// side to move, skipping terminal results.
func randomPosition(rng *rand.Rand, n int) (*board.Board, core.Mark) {
	b := board.New()
	toMove := core.MarkX
	for i := 0; i < n && !b.IsTerminal(); i++ {
		moves := b.LegalMoves()
		_ = b.Apply(moves[rng.Intn(len(moves))], toMove)
		toMove = core.Opponent(toMove)
	}
	return b, toMove
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	checked := 0
	for i := 0; i < 200; i++ {
		b, toMove := randomPosition(rng, rng.Intn(8))
		if b.IsTerminal() {
			continue
		}
		for _, h := range allHeuristics {
			mm, err := Search(b.Clone(), toMove, AlgorithmMinimax, h)
			if err != nil {
				t.Fatal(err)
			}
			ab, err := Search(b.Clone(), toMove, AlgorithmAlphaBeta, h)
			if err != nil {
				t.Fatal(err)
			}
			if mm.BestMove != ab.BestMove || mm.Value != ab.Value {
				t.Fatalf("%s on %q (%v to move): minimax (%d,%d) vs alphabeta (%d,%d)",
					h.Name(), b.Grid(), toMove, mm.BestMove, mm.Value, ab.BestMove, ab.Value)
			}
			if ab.Nodes > mm.Nodes {
				t.Fatalf("%s on %q: alphabeta visited %d nodes, minimax %d",
					h.Name(), b.Grid(), ab.Nodes, mm.Nodes)
			}
		}
		checked++
	}
	if checked < 100 {
		t.Fatalf("only %d non-terminal positions checked", checked)
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	b := parseBoard(t, "X.O/.X./...")
	before := b.Grid()
	for _, algo := range allAlgorithms {
		if _, err := Search(b, core.MarkO, algo, H2{}); err != nil {
			t.Fatal(err)
		}
		if got := b.Grid(); got != before {
			t.Fatalf("%s left board as %q, want %q", algo, got, before)
		}
	}
}

func TestSelfPlayAlwaysDraws(t *testing.T) {
	// Optimal play from the empty board never loses, so two optimal players
	// always draw, whichever engine and heuristic each side uses.
	for _, algo := range allAlgorithms {
		for _, h := range allHeuristics {
			b := board.New()
			toMove := core.MarkX
			for !b.IsTerminal() {
				mv, err := SelectMove(b, toMove, algo, h)
				if err != nil {
					t.Fatalf("%s/%s: %v", algo, h.Name(), err)
				}
				if mv == NoMove {
					t.Fatalf("%s/%s: no move on non-terminal board %q", algo, h.Name(), b.Grid())
				}
				if err := b.Apply(mv, toMove); err != nil {
					t.Fatalf("%s/%s: %v", algo, h.Name(), err)
				}
				toMove = core.Opponent(toMove)
			}
			if w := b.Winner(); w != core.MarkNone {
				t.Errorf("%s/%s: self-play produced winner %v on %q", algo, h.Name(), w, b.Grid())
			}
			if !b.IsFull() {
				t.Errorf("%s/%s: self-play ended early on %q", algo, h.Name(), b.Grid())
			}
		}
	}
}

func TestSelectMoveOnFullBoard(t *testing.T) {
	b := parseBoard(t, "XXO/OOX/XXO")
	mv, err := SelectMove(b, core.MarkX, AlgorithmMinimax, H1{})
	if err != nil {
		t.Fatal(err)
	}
	if mv != NoMove {
		t.Fatalf("move on full board = %d, want NoMove", mv)
	}
	res, err := Search(b, core.MarkX, AlgorithmAlphaBeta, H2{})
	if err != nil {
		t.Fatal(err)
	}
	if res.BestMove != NoMove || res.Nodes != 0 {
		t.Fatalf("full-board search = %+v, want no move and zero nodes", res)
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	b := board.New()
	if _, err := Search(b, core.MarkNone, AlgorithmMinimax, H1{}); err == nil {
		t.Error("search without a side to move should fail")
	}
	if _, err := Search(b, core.MarkX, Algorithm("negamax"), H1{}); err == nil {
		t.Error("search with unknown algorithm should fail")
	}
	if _, err := Search(b, core.MarkX, AlgorithmMinimax, nil); err == nil {
		t.Error("search without heuristic should fail")
	}
	if _, err := ParseAlgorithm("negamax"); err == nil {
		t.Error("ParseAlgorithm(negamax) should fail")
	}
}
