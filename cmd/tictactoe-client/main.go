// Package main implements an interactive debugging client for the
// tic-tac-toe server API.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"tictactoe/internal/client/api"
	"tictactoe/internal/client/commands"
	"tictactoe/internal/client/display"

	"github.com/chzyer/readline"
)

// session holds the client's connection and game context.
type session struct {
	apiBaseURL  string
	currentGame string
	client      *api.Client
	verbose     bool
}

func (s *session) GetAPIBaseURL() string    { return s.apiBaseURL }
func (s *session) SetAPIBaseURL(url string) { s.apiBaseURL = url }
func (s *session) GetCurrentGame() string   { return s.currentGame }
func (s *session) SetCurrentGame(id string) { s.currentGame = id }
func (s *session) GetClient() *api.Client   { return s.client }
func (s *session) IsVerbose() bool          { return s.verbose }

func main() {
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	s := &session{
		apiBaseURL: baseURL,
		client:     api.New(baseURL),
	}

	// Initialize readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("tictactoe"),
		HistoryFile:     ".tictactoe_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sTic-Tac-Toe Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, s.apiBaseURL, display.Reset)
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)

	for {
		// Build enhanced prompt
		prompt := buildPrompt(s)
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		// Check for verbose flag
		if strings.HasSuffix(line, " -v") {
			s.verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.verbose = false
		}

		registry.Execute(line)
	}
}

func buildPrompt(s *session) string {
	promptStr := "tictactoe"
	if s.currentGame != "" {
		short := s.currentGame
		if len(short) > 8 {
			short = short[:8]
		}
		promptStr += display.Yellow + " [" + display.Reset +
			display.White + short + display.Reset +
			display.Yellow + "]"
	}
	return display.Prompt(promptStr)
}
