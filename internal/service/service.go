package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tictactoe/internal/analysis"
	"tictactoe/internal/board"
	"tictactoe/internal/core"
	"tictactoe/internal/engine"
	"tictactoe/internal/game"
	"tictactoe/internal/storage"

	"github.com/google/uuid"
)

// Sentinel errors the transport layers map to stable error codes.
var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameOver        = errors.New("game is over")
	ErrNotHumanTurn    = errors.New("not a human player's turn")
	ErrNotComputerTurn = errors.New("not a computer player's turn")
	ErrStorageDisabled = errors.New("storage disabled")
)

// Service is a pure state manager for games with optional persistence of
// analysis runs
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
	store *storage.Store // nil if persistence disabled
}

// New creates a new service instance with optional storage
func New(store *storage.Store) (*Service, error) {
	return &Service{
		games: make(map[string]*game.Game),
		store: store,
	}, nil
}

// CreateGame creates a game with player configuration. The starting turn and
// initial state are derived from the grid (X moves first).
func (s *Service) CreateGame(id string, xConfig, oConfig core.PlayerConfig, initialGrid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	if initialGrid == "" {
		initialGrid = board.EmptyGrid
	}
	b, err := board.Parse(initialGrid)
	if err != nil {
		return err
	}

	xPlayer := core.NewPlayer(xConfig, core.MarkX)
	oPlayer := core.NewPlayer(oConfig, core.MarkO)

	g := game.New(b.Grid(), xPlayer, oPlayer, b.SideToMove())
	g.SetState(b.State())
	s.games[id] = g

	return nil
}

// UpdatePlayers replaces players in an existing game
func (s *Service) UpdatePlayers(gameID string, xConfig, oConfig core.PlayerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	g.UpdatePlayers(core.NewPlayer(xConfig, core.MarkX), core.NewPlayer(oConfig, core.MarkO))
	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeHumanMove applies a human player's move to the game
func (s *Service) MakeHumanMove(gameID string, move int) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.State())
	}
	if g.NextPlayer().Type != core.PlayerHuman {
		return nil, ErrNotHumanTurn
	}

	return s.applyMove(g, move, nil)
}

// MakeComputerMove runs the next player's configured engine and applies the
// selected move. The search runs on a private copy of the board.
func (s *Service) MakeComputerMove(gameID string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.State())
	}
	player := g.NextPlayer()
	if player.Type != core.PlayerComputer {
		return nil, ErrNotComputerTurn
	}

	b, err := board.Parse(g.CurrentGrid())
	if err != nil {
		return nil, fmt.Errorf("corrupt game %s: %w", gameID, err)
	}
	algo, err := engine.ParseAlgorithm(player.Algorithm)
	if err != nil {
		return nil, err
	}
	h, err := engine.ParseHeuristic(player.Heuristic)
	if err != nil {
		return nil, err
	}

	res, err := engine.Search(b.Clone(), g.NextTurn(), algo, h)
	if err != nil {
		return nil, err
	}
	if res.BestMove == engine.NoMove {
		return nil, fmt.Errorf("%w: no legal move", ErrGameOver)
	}

	return s.applyMove(g, res.BestMove, &res)
}

// applyMove validates the move against the current position, appends the new
// snapshot, and records the result. Callers hold s.mu.
func (s *Service) applyMove(g *game.Game, move int, search *engine.SearchResult) (*game.MoveResult, error) {
	b, err := board.Parse(g.CurrentGrid())
	if err != nil {
		return nil, fmt.Errorf("corrupt game state: %w", err)
	}

	mover := g.NextTurn()
	if err := b.Apply(move, mover); err != nil {
		return nil, err
	}

	g.AddSnapshot(b.Grid(), move, core.Opponent(mover))
	g.SetState(b.State())

	result := &game.MoveResult{
		Move:      move,
		Player:    mover,
		GameState: g.State(),
	}
	if search != nil {
		result.Value = search.Value
		result.Nodes = search.Nodes
		result.Elapsed = search.Elapsed
	}
	g.SetLastResult(result)

	return result, nil
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	if err := g.UndoMoves(count); err != nil {
		return err
	}

	// The restored position may itself be terminal (e.g. the game started
	// from a terminal grid); re-derive the state from the board.
	if b, err := board.Parse(g.CurrentGrid()); err == nil {
		g.SetState(b.State())
	}
	return nil
}

// CurrentBoard returns a parsed copy of the game's current position
func (s *Service) CurrentBoard(gameID string) (*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return board.Parse(g.CurrentGrid())
}

// LegalMoves returns the playable cell indices of the game's current
// position. A finished game has none, even when cells remain empty; the
// board-level LegalMoves still reports those cells.
func (s *Service) LegalMoves(gameID string) ([]int, error) {
	b, err := s.CurrentBoard(gameID)
	if err != nil {
		return nil, err
	}
	if b.IsTerminal() {
		return []int{}, nil
	}
	return b.LegalMoves(), nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	delete(s.games, gameID)
	return nil
}

// Analyze sweeps every algorithm/heuristic combination over the given grid
// and persists the runs when storage is enabled.
func (s *Service) Analyze(grid string) ([]analysis.Run, error) {
	if grid == "" {
		grid = board.EmptyGrid
	}
	b, err := board.Parse(grid)
	if err != nil {
		return nil, err
	}
	if b.IsTerminal() {
		return nil, fmt.Errorf("%w: nothing to analyze", ErrGameOver)
	}

	runs, err := analysis.Sweep(b, b.SideToMove())
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		now := time.Now().UTC()
		for _, r := range runs {
			s.store.RecordRun(storage.AnalysisRecord{
				Grid:       r.Grid,
				SideToMove: r.SideToMove,
				Algorithm:  r.Algorithm,
				Heuristic:  r.Heuristic,
				BestMove:   r.BestMove,
				Value:      r.Value,
				Nodes:      r.Nodes,
				ElapsedNS:  int64(r.Elapsed),
				RunTimeUTC: now,
			})
		}
	}

	return runs, nil
}

// ListAnalysisRuns returns recent persisted analysis runs
func (s *Service) ListAnalysisRuns(grid string, limit int) ([]storage.AnalysisRecord, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	return s.store.QueryRuns(grid, limit)
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear all games
	s.games = make(map[string]*game.Game)

	// Close storage if enabled
	if s.store != nil {
		return s.store.Close()
	}

	return nil
}
