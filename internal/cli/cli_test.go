package cli

import (
	"bytes"
	"strings"
	"testing"

	"tictactoe/internal/board"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input string
		want  CommandType
	}{
		{"new", CmdNew},
		{"resume XX./OO./...", CmdResume},
		{"4", CmdMove},
		{"undo", CmdUndo},
		{"undo 2", CmdUndo},
		{"hint", CmdHint},
		{"color bright", CmdColor},
		{"verbose", CmdVerbose},
		{"history", CmdHistory},
		{"help", CmdHelp},
		{"?", CmdHelp},
		{"quit", CmdQuit},
		{"exit", CmdQuit},
	}
	c := New(strings.NewReader(""), &bytes.Buffer{})
	for _, tc := range cases {
		if got := c.parseCommand(tc.input); got.Type != tc.want {
			t.Errorf("parseCommand(%q).Type = %v, want %v", tc.input, got.Type, tc.want)
		}
	}
}

func TestGetCommand(t *testing.T) {
	c := New(strings.NewReader("new\n\n4\n"), &bytes.Buffer{})

	cmd, err := c.GetCommand()
	if err != nil || cmd.Type != CmdNew {
		t.Fatalf("first command = %v, %v", cmd, err)
	}
	cmd, err = c.GetCommand()
	if err != nil || cmd.Type != CmdNone {
		t.Fatalf("blank line = %v, %v", cmd, err)
	}
	cmd, err = c.GetCommand()
	if err != nil || cmd.Type != CmdMove || cmd.Args[0] != "4" {
		t.Fatalf("move command = %v, %v", cmd, err)
	}
	// EOF maps to quit.
	cmd, err = c.GetCommand()
	if err != nil || cmd.Type != CmdQuit {
		t.Fatalf("EOF command = %v, %v", cmd, err)
	}
}

func TestDisplayBoardShowsIndices(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	b, err := board.Parse("X.O/.../...")
	if err != nil {
		t.Fatal(err)
	}
	c.DisplayBoard(b)

	got := out.String()
	for _, want := range []string{" X ", " O ", " 4 ", " 8 ", "---+---+---"} {
		if !strings.Contains(got, want) {
			t.Errorf("board output missing %q:\n%s", want, got)
		}
	}
}

func TestSetTheme(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})
	if err := c.SetTheme(ThemeBright); err != nil {
		t.Fatal(err)
	}
	if err := c.SetTheme("magenta"); err == nil {
		t.Fatal("unknown theme should be rejected")
	}
}
