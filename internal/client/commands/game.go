package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tictactoe/internal/client/api"
	"tictactoe/internal/client/display"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a new game",
		Usage:       "new",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join/set current game ID",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Make a move",
		Usage:       "move <cell 0-8>",
		Handler:     moveHandler,
	})

	r.Register(&Command{
		Name:        "computer",
		ShortName:   "c",
		Description: "Trigger computer move",
		Usage:       "computer",
		Handler:     computerMoveHandler,
	})

	r.Register(&Command{
		Name:        "undo",
		ShortName:   "u",
		Description: "Undo moves",
		Usage:       "undo [count]",
		Handler:     undoHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "h",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "legal",
		ShortName:   "l",
		Description: "Show legal moves",
		Usage:       "legal",
		Handler:     legalMovesHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete a game",
		Usage:       "delete [gameId]",
		Handler:     deleteGameHandler,
	})
}

// askPlayer prompts for one side's configuration on stdin.
func askPlayer(scanner *bufio.Scanner, mark string) api.PlayerConfig {
	fmt.Print(display.Yellow + mark + " player type (h/c) [h]: " + display.Reset)
	scanner.Scan()
	playerType := strings.ToLower(strings.TrimSpace(scanner.Text()))

	config := api.PlayerConfig{Type: 1}
	if playerType != "c" {
		return config
	}

	config.Type = 2

	fmt.Print(display.Yellow + "Algorithm (minimax/alphabeta) [alphabeta]: " + display.Reset)
	scanner.Scan()
	if algo := strings.ToLower(strings.TrimSpace(scanner.Text())); algo == "minimax" || algo == "alphabeta" {
		config.Algorithm = algo
	}

	fmt.Print(display.Yellow + "Heuristic (h1/h2) [h2]: " + display.Reset)
	scanner.Scan()
	if heur := strings.ToLower(strings.TrimSpace(scanner.Text())); heur == "h1" || heur == "h2" {
		config.Heuristic = heur
	}

	return config
}

func newGameHandler(s Session, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	c := s.GetClient()

	fmt.Println("\n" + display.Cyan + "Creating new game..." + display.Reset)

	x := askPlayer(scanner, "X")
	o := askPlayer(scanner, "O")

	// Starting position
	fmt.Print(display.Yellow + "Starting position (grid) [empty]: " + display.Reset)
	scanner.Scan()
	grid := strings.TrimSpace(scanner.Text())

	req := &api.CreateGameRequest{
		X:    x,
		O:    o,
		Grid: grid,
	}

	resp, err := c.CreateGame(req)
	if err != nil {
		return err
	}

	s.SetCurrentGame(resp.GameID)

	fmt.Printf("%sGame created: %s%s\n", display.Green, resp.GameID, display.Reset)
	fmt.Printf("Turn: %s | State: %s\n", display.ColorForTurn(resp.Turn), resp.State)
	if resp.LastMove != nil {
		fmt.Printf("%sComputer opened with cell %d%s\n", display.Magenta, resp.LastMove.Move, display.Reset)
	}

	return nil
}

func joinGameHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	gameID := args[0]
	c := s.GetClient()

	// Verify game exists
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetCurrentGame(gameID)

	fmt.Printf("%sJoined game: %s%s\n", display.Green, gameID, display.Reset)
	fmt.Printf("Turn: %s | State: %s | Moves: %d\n", resp.Turn, resp.State, len(resp.Moves))

	return nil
}

func moveHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: move <cell 0-8>")
	}

	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	move, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid cell index: %s", args[0])
	}

	c := s.GetClient()
	resp, err := c.MakeMove(gameID, move)
	if err != nil {
		return err
	}

	fmt.Printf("%sMove accepted%s\n", display.Green, display.Reset)

	// The server plays the computer reply in the same request.
	if resp.LastMove != nil && resp.LastMove.Player != "" && resp.LastMove.Move != move {
		fmt.Printf("%sComputer played: cell %d%s", display.Magenta, resp.LastMove.Move, display.Reset)
		if resp.LastMove.Nodes > 0 {
			fmt.Printf(" (value %d, %d nodes)", resp.LastMove.Value, resp.LastMove.Nodes)
		}
		fmt.Println()
	}
	if resp.State != "ongoing" {
		fmt.Printf("%sGame over: %s%s\n", display.Cyan, resp.State, display.Reset)
	}

	return nil
}

func computerMoveHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	// Fetching the game auto-plays a pending computer turn.
	c := s.GetClient()
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	if resp.LastMove != nil {
		fmt.Printf("%sComputer played: cell %d%s", display.Magenta, resp.LastMove.Move, display.Reset)
		if resp.LastMove.Nodes > 0 {
			fmt.Printf(" (value %d, %d nodes)", resp.LastMove.Value, resp.LastMove.Nodes)
		}
		fmt.Println()
	} else {
		fmt.Printf("%sNo computer move pending%s\n", display.Yellow, display.Reset)
	}

	if resp.State != "ongoing" {
		fmt.Printf("%sGame over: %s%s\n", display.Cyan, resp.State, display.Reset)
	}
	return nil
}

func undoHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	count := 1
	if len(args) > 0 {
		var err error
		count, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0])
		}
	}

	c := s.GetClient()
	if _, err := c.UndoMoves(gameID, count); err != nil {
		return err
	}

	fmt.Printf("%sUndid %d move(s)%s\n", display.Green, count, display.Reset)
	return nil
}

func showBoardHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()

	// Get full game state
	game, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	// Get ASCII board
	board, err := c.GetBoard(gameID)
	if err != nil {
		return err
	}

	// Display board with colors
	fmt.Println()
	display.RenderBoard(board.Board)

	// Display game info
	fmt.Printf("\nGrid: %s\n", game.Grid)
	fmt.Printf("Turn: %s | State: %s | Moves: %d\n",
		display.ColorForTurn(game.Turn), game.State, len(game.Moves))

	// Display move history
	if len(game.Moves) > 0 {
		fmt.Printf("\nHistory: ")
		for i, move := range game.Moves {
			if i > 0 {
				fmt.Print(" ")
			}
			if i%2 == 0 {
				fmt.Printf("%d.%d", (i/2)+1, move)
			} else {
				fmt.Printf(" %d", move)
			}
		}
		fmt.Println()
	}

	// Display last move info
	if game.LastMove != nil {
		fmt.Printf("Last move: cell %d by %s", game.LastMove.Move, game.LastMove.Player)
		if game.LastMove.Nodes > 0 {
			fmt.Printf(" (value %d, %d nodes)", game.LastMove.Value, game.LastMove.Nodes)
		}
		fmt.Println()
	}

	return nil
}

func legalMovesHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()
	resp, err := c.GetLegalMoves(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Legal moves: %v\n", resp.Moves)
	return nil
}

func gameStateHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}

	c := s.GetClient()
	resp, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	// Pretty print JSON
	fmt.Printf("%sGame State:%s\n", display.Cyan, display.Reset)
	display.PrettyPrintJSON(resp)

	return nil
}

func deleteGameHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if len(args) > 0 {
		gameID = args[0]
	}

	if gameID == "" {
		return fmt.Errorf("specify game ID or set current game")
	}

	c := s.GetClient()
	if err := c.DeleteGame(gameID); err != nil {
		return err
	}

	if gameID == s.GetCurrentGame() {
		s.SetCurrentGame("")
	}

	fmt.Printf("%sGame deleted: %s%s\n", display.Green, gameID, display.Reset)
	return nil
}
