package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tictactoe/internal/board"
	"tictactoe/internal/core"
	"tictactoe/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdUndo
	CmdHint
	CmdColor
	CmdVerbose
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff    ColorTheme = "off"
	ThemeBright ColorTheme = "bright"
	ThemeGreen  ColorTheme = "green"
	ThemeGray   ColorTheme = "gray"
)

type themeColors struct {
	x     string
	o     string
	empty string
	reset string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {
		x:     "",
		o:     "",
		empty: "",
		reset: "",
	},
	ThemeBright: {
		x:     "\033[91m", // Bright red
		o:     "\033[94m", // Bright blue
		empty: "\033[90m", // Dim gray
		reset: "\033[0m",
	},
	ThemeGreen: {
		x:     "\033[38;5;157m", // Light green
		o:     "\033[38;5;22m",  // Dark green
		empty: "\033[90m",
		reset: "\033[0m",
	},
	ThemeGray: {
		x:     "\033[38;5;251m", // Light gray
		o:     "\033[38;5;240m", // Dark gray
		empty: "\033[90m",
		reset: "\033[0m",
	},
}

type CLI struct {
	input   *bufio.Scanner
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(input io.Reader, output io.Writer) *CLI {
	return &CLI{
		input:   bufio.NewScanner(input),
		output:  output,
		theme:   ThemeOff,
		verbose: false,
	}
}

// Reads a command synchronously
func (c *CLI) GetCommand() (*Command, error) {
	if !c.input.Scan() {
		if err := c.input.Err(); err != nil {
			return nil, err
		}
		return &Command{Type: CmdQuit}, nil
	}

	input := strings.TrimSpace(c.input.Text())
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "hint":
		return &Command{Type: CmdHint}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{cmd}}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, bright, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v\n", err))
}

func (c *CLI) ShowPrompt(prompt string) {
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) ReadLine() string {
	if c.input.Scan() {
		return strings.TrimSpace(c.input.Text())
	}
	return ""
}

// DisplayBoard renders the grid with cell indices in the empty squares so a
// move can be typed directly.
func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			if col > 0 {
				sb.WriteString("|")
			}
			switch b.Cell(idx) {
			case core.MarkX:
				sb.WriteString(fmt.Sprintf(" %sX%s ", theme.x, theme.reset))
			case core.MarkO:
				sb.WriteString(fmt.Sprintf(" %sO%s ", theme.o, theme.reset))
			default:
				sb.WriteString(fmt.Sprintf(" %s%d%s ", theme.empty, idx, theme.reset))
			}
		}
		sb.WriteString("\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new              - Start a new game with player selection
  resume <grid>    - Resume from a position (e.g. XX./OO./...)
  <move>           - Place your mark at a cell index (0-8)
  undo [count]     - Undo last move(s), default 1
  hint             - Show the engine's best move for the position
  color <theme>    - Set board color theme (off|bright|green|gray)
  verbose          - Toggle detailed move information
  history          - Show game move history and positions
  quit/exit        - Exit the program
  help/?           - Show this help message

During any game:
  Press ENTER      - Execute computer move (when it's computer's turn)`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Tic-Tac-Toe!")
	c.ShowMessage("Commands: new, resume <grid>, <move 0-8>, undo, hint, quit/exit, verbose, history, help/?")
	c.ShowMessage("Example: 'resume XX./OO./...' to start from a position.")
	c.ShowMessage("Press ENTER to execute computer moves when it's computer's turn.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting grid: %s\n", g.InitialGrid()))

	moves := g.Moves()
	for i := 0; i < len(moves); i += 2 {
		moveNum := i/2 + 1
		x := moves[i]
		if i+1 < len(moves) {
			o := moves[i+1]
			c.ShowMessage(fmt.Sprintf("%d. X:%d | O:%d\n", moveNum, x, o))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. X:%d | ...\n", moveNum, x))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current grid: %s\n", g.CurrentGrid()))
	c.ShowMessage(fmt.Sprintf("Game state: %s\n", g.State()))
}

func (c *CLI) ShowComputerMove(result *game.MoveResult) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Computer (%s): cell %d (value=%d, nodes=%d, %s)\n",
			result.Player, result.Move, result.Value, result.Nodes, result.Elapsed))
	} else {
		// Always show computer moves in non-verbose mode too
		c.ShowMessage(fmt.Sprintf("Computer (%s): cell %d\n", result.Player, result.Move))
	}
}

func (c *CLI) ShowHumanMove(move int) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Your move: cell %d\n", move))
	}
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s\n", state))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
