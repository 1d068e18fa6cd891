package cli

import (
	"fmt"
	"strconv"
	"strings"

	"tictactoe/internal/cli"
	"tictactoe/internal/core"
	"tictactoe/internal/engine"
	"tictactoe/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Main game loop - simple command processing
func (h *CLIHandler) Run() {
	for {
		// Generate prompt based on current game state
		prompt := h.getPrompt()
		h.view.ShowPrompt(prompt)

		// Get command (blocking)
		cmd, err := h.view.GetCommand()
		if err != nil {
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			// Always show whose turn it is
			prompt = fmt.Sprintf("[%s]> ", g.NextTurn())
			if g.NextPlayer().Type == core.PlayerComputer {
				prompt = "ENTER to execute computer move\n" + prompt
			}
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		// Empty command triggers computer move if it's computer's turn
		if h.gameID != "" {
			g, err := h.svc.GetGame(h.gameID)
			if err == nil && g.State() == core.StateOngoing &&
				g.NextPlayer().Type == core.PlayerComputer {
				h.executeComputerMove()
			}
		}
		return true

	case cli.CmdNew:
		return h.handleNewGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <grid> (e.g. XX./OO./...)")
			return true
		}
		return h.handleNewGame(cmd.Args[0])

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <grid>'.")
			return true
		}

		g, _ := h.svc.GetGame(h.gameID)
		if g.NextPlayer().Type != core.PlayerHuman {
			h.view.ShowMessage("It's not a human player's turn. Press ENTER to execute computer move.")
			return true
		}

		move, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			h.view.ShowMessage(fmt.Sprintf("Unknown command or move: %s (cells are 0-8)", cmd.Args[0]))
			return true
		}

		result, err := h.svc.MakeHumanMove(h.gameID, move)
		if err != nil {
			h.view.ShowError(fmt.Errorf("invalid move: %v", err))
			return true
		}

		h.view.ShowHumanMove(result.Move)

		board, _ := h.svc.CurrentBoard(h.gameID)
		h.view.DisplayBoard(board)

		if result.GameState != core.StateOngoing {
			h.view.ShowGameOver(result.GameState)
			h.gameID = ""
		}

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		// Parse undo count
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.UndoMoves(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Move undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
			}

			board, _ := h.svc.CurrentBoard(h.gameID)
			h.view.DisplayBoard(board)
		}

	case cli.CmdHint:
		h.handleHint()

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|bright|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			if h.gameID != "" {
				board, _ := h.svc.CurrentBoard(h.gameID)
				h.view.DisplayBoard(board)
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) executeComputerMove() {
	result, err := h.svc.MakeComputerMove(h.gameID)
	if err != nil {
		h.view.ShowError(fmt.Errorf("engine error: %v", err))
		h.gameID = ""
		return
	}

	h.view.ShowComputerMove(result)
	board, _ := h.svc.CurrentBoard(h.gameID)
	h.view.DisplayBoard(board)

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

// handleHint searches the current position with the default engine and shows
// the best move without playing it.
func (h *CLIHandler) handleHint() {
	if h.gameID == "" {
		h.view.ShowMessage("No active game.")
		return
	}

	board, err := h.svc.CurrentBoard(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	if board.IsTerminal() {
		h.view.ShowMessage("Game is over, nothing to suggest.")
		return
	}

	res, err := engine.Search(board, board.SideToMove(), engine.AlgorithmAlphaBeta, engine.H2{})
	if err != nil {
		h.view.ShowError(err)
		return
	}

	if h.view.IsVerbose() {
		h.view.ShowMessage(fmt.Sprintf("Hint: cell %d (value=%d, nodes=%d, %s)",
			res.BestMove, res.Value, res.Nodes, res.Elapsed))
	} else {
		h.view.ShowMessage(fmt.Sprintf("Hint: cell %d", res.BestMove))
	}
}

// Starts a new game with player and engine selection
func (h *CLIHandler) handleNewGame(grid string) bool {
	xConfig := h.askPlayerConfig("X")
	oConfig := h.askPlayerConfig("O")

	// Create new game
	gameID := h.svc.GenerateGameID()
	if err := h.svc.CreateGame(gameID, xConfig, oConfig, grid); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		h.gameID = ""
		return true
	}
	h.gameID = gameID

	h.view.ShowMessage("Game started.")
	board, _ := h.svc.CurrentBoard(h.gameID)
	h.view.DisplayBoard(board)

	return true
}

// askPlayerConfig prompts for one player's type and, for computer players,
// the algorithm and heuristic (defaults apply on empty input).
func (h *CLIHandler) askPlayerConfig(mark string) core.PlayerConfig {
	h.view.ShowPrompt(fmt.Sprintf("Select %s player (h/c): ", mark))
	input := h.view.ReadLine()

	config := core.PlayerConfig{Type: core.PlayerHuman}
	if input != "c" && input != "computer" {
		return config
	}

	config.Type = core.PlayerComputer

	h.view.ShowPrompt(fmt.Sprintf("Algorithm for %s [%s] (minimax/alphabeta): ", mark, core.DefaultAlgorithm))
	if algo := strings.ToLower(h.view.ReadLine()); algo == "minimax" || algo == "alphabeta" {
		config.Algorithm = algo
	}

	h.view.ShowPrompt(fmt.Sprintf("Heuristic for %s [%s] (h1/h2): ", mark, core.DefaultHeuristic))
	if heur := strings.ToLower(h.view.ReadLine()); heur == "h1" || heur == "h2" {
		config.Heuristic = heur
	}

	return config
}
