package engine

import (
	"testing"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
)

func parseBoard(t *testing.T, grid string) *board.Board {
	t.Helper()
	b, err := board.Parse(grid)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", grid, err)
	}
	return b
}

func TestH1(t *testing.T) {
	cases := []struct {
		grid string
		root core.Mark
		want int
	}{
		{".../.../...", core.MarkX, 0},
		{".../.../...", core.MarkO, 0},
		{"XXX/OO./...", core.MarkX, 1},
		{"XXX/OO./...", core.MarkO, -1},
		{"XXO/OOX/XXO", core.MarkX, 0}, // draw
		{"X.O/.X./...", core.MarkX, 0}, // non-terminal
	}
	for _, c := range cases {
		b := parseBoard(t, c.grid)
		if got := (H1{}).Evaluate(b, c.root); got != c.want {
			t.Errorf("H1(%q, %v) = %d, want %d", c.grid, c.root, got, c.want)
		}
	}
}

func TestH2(t *testing.T) {
	cases := []struct {
		grid string
		root core.Mark
		want int
	}{
		// Empty board: all 8 lines open for both sides.
		{".../.../...", core.MarkX, 0},
		{".../.../...", core.MarkO, 0},
		// X at 0, O at 1: X keeps col 0, diag, row 2, col 2 minus O's lines.
		{"XO./.../...", core.MarkX, 1},
		{"XO./.../...", core.MarkO, -1},
		// Won board still evaluates as a plain line-count difference.
		{"XXX/OO./...", core.MarkX, 1},
		{"XXX/OO./...", core.MarkO, -1},
		// Draw: every line blocked for both sides.
		{"XXO/OOX/XXO", core.MarkX, 0},
	}
	for _, c := range cases {
		b := parseBoard(t, c.grid)
		if got := (H2{}).Evaluate(b, c.root); got != c.want {
			t.Errorf("H2(%q, %v) = %d, want %d", c.grid, c.root, got, c.want)
		}
	}
}

func TestHeuristicsArePure(t *testing.T) {
	b := parseBoard(t, "X.O/.X./...")
	before := b.Grid()
	for _, h := range []Heuristic{H1{}, H2{}} {
		for i := 0; i < 3; i++ {
			first := h.Evaluate(b, core.MarkX)
			second := h.Evaluate(b, core.MarkX)
			if first != second {
				t.Fatalf("%s not deterministic: %d then %d", h.Name(), first, second)
			}
		}
	}
	if b.Grid() != before {
		t.Fatalf("heuristic mutated board: %q", b.Grid())
	}
}

func TestParseHeuristic(t *testing.T) {
	if h, err := ParseHeuristic("h1"); err != nil || h.Name() != HeuristicH1 {
		t.Fatalf("ParseHeuristic(h1) = %v, %v", h, err)
	}
	if h, err := ParseHeuristic("h2"); err != nil || h.Name() != HeuristicH2 {
		t.Fatalf("ParseHeuristic(h2) = %v, %v", h, err)
	}
	if _, err := ParseHeuristic("h3"); err == nil {
		t.Fatal("ParseHeuristic(h3) should fail")
	}
}
