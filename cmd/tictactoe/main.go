// Package main implements the local interactive tic-tac-toe game.
package main

import (
	"fmt"
	"os"

	"tictactoe/internal/cli"
	"tictactoe/internal/service"
	clitransport "tictactoe/internal/transport/cli"

	"golang.org/x/term"
)

func main() {
	svc, err := service.New(nil)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close()

	view := cli.New(os.Stdin, os.Stdout)

	// Colors on by default when attached to a terminal
	if term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(cli.ThemeBright)
	}

	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}
