package http

import (
	"errors"
	"log"

	"tictactoe/internal/analysis"
	"tictactoe/internal/core"
	"tictactoe/internal/game"
	"tictactoe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGame creates a new game with specified player configurations
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*CreateGameRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
			Code:  ErrInvalidRequest,
		})
	}

	gameID := h.svc.GenerateGameID()

	if err := h.svc.CreateGame(gameID, req.X, req.O, req.Grid); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "failed to create game",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	// Build response - cache game instance
	g, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)

	// Execute computer move if computer starts
	if g.NextPlayer().Type == core.PlayerComputer && g.State() == core.StateOngoing {
		if err := h.executeComputerMove(gameID, &response); err != nil {
			// Log error but return game created successfully
			log.Printf("Warning: failed to execute initial computer move: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetGame retrieves current game state, executing computer move if needed
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	response := h.buildGameResponse(gameID, g)

	// Auto-execute computer move if it's computer's turn
	if g.NextPlayer().Type == core.PlayerComputer && g.State() == core.StateOngoing {
		if err := h.executeComputerMove(gameID, &response); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "failed to execute computer move",
				Code:    ErrInternalError,
				Details: err.Error(),
			})
		}
	}

	return c.JSON(response)
}

// MakeMove submits a human player move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*MoveRequest)
	if !ok || req.Move == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
			Code:  ErrInvalidRequest,
		})
	}

	result, err := h.svc.MakeHumanMove(gameID, *req.Move)
	if err != nil {
		status, code := moveErrorStatus(err)
		return c.Status(status).JSON(ErrorResponse{
			Error:   "cannot make move",
			Code:    code,
			Details: err.Error(),
		})
	}

	g, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)
	response.LastMove = moveInfo(result)

	// Execute computer response if needed
	if g.NextPlayer().Type == core.PlayerComputer && g.State() == core.StateOngoing {
		if err := h.executeComputerMove(gameID, &response); err != nil {
			// Computer move failed, but human move succeeded
			log.Printf("Warning: computer move failed: %v", err)
		}
	}

	return c.JSON(response)
}

// UndoMove undoes one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	count := 1
	if req, ok := c.Locals("validatedBody").(*UndoRequest); ok && req.Count > 0 {
		count = req.Count
	}

	if err := h.svc.UndoMoves(gameID, count); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  ErrGameNotFound,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "cannot undo moves",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	// Return updated game state
	g, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)

	return c.JSON(response)
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	b, err := h.svc.CurrentBoard(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	return c.JSON(BoardResponse{
		Grid:  b.Grid(),
		Board: b.ToASCII(),
	})
}

// GetLegalMoves returns the empty cell indices of the current position
func (h *HTTPHandler) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	moves, err := h.svc.LegalMoves(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}
	b, _ := h.svc.CurrentBoard(gameID)

	return c.JSON(LegalMovesResponse{
		Grid:  b.Grid(),
		Moves: moves,
	})
}

// RunAnalysis sweeps all algorithm/heuristic combinations over a position
func (h *HTTPHandler) RunAnalysis(c *fiber.Ctx) error {
	grid := ""
	if req, ok := c.Locals("validatedBody").(*AnalyzeRequest); ok {
		grid = req.Grid
	}

	runs, err := h.svc.Analyze(grid)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "cannot analyze position",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	response := AnalysisResponse{
		Runs:   make([]AnalysisRunInfo, 0, len(runs)),
		Report: analysis.FormatReport(runs),
	}
	for _, r := range runs {
		response.Runs = append(response.Runs, AnalysisRunInfo{
			Grid:       r.Grid,
			SideToMove: r.SideToMove,
			Algorithm:  r.Algorithm,
			Heuristic:  r.Heuristic,
			BestMove:   r.BestMove,
			Value:      r.Value,
			Nodes:      r.Nodes,
			ElapsedNS:  int64(r.Elapsed),
		})
	}

	return c.JSON(response)
}

// ListAnalysis returns recent persisted analysis runs
func (h *HTTPHandler) ListAnalysis(c *fiber.Ctx) error {
	grid := c.Query("grid")
	limit := c.QueryInt("limit", 20)

	records, err := h.svc.ListAnalysisRuns(grid, limit)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "analysis history requires storage",
				Code:  ErrStorageDisabled,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "failed to query analysis runs",
			Code:    ErrInternalError,
			Details: err.Error(),
		})
	}

	runs := make([]AnalysisRunInfo, 0, len(records))
	for _, r := range records {
		runs = append(runs, AnalysisRunInfo{
			Grid:       r.Grid,
			SideToMove: r.SideToMove,
			Algorithm:  r.Algorithm,
			Heuristic:  r.Heuristic,
			BestMove:   r.BestMove,
			Value:      r.Value,
			Nodes:      r.Nodes,
			ElapsedNS:  r.ElapsedNS,
		})
	}

	return c.JSON(fiber.Map{"runs": runs})
}

// Helper: map a service move error to HTTP status and error code
func moveErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound, ErrGameNotFound
	case errors.Is(err, service.ErrGameOver):
		return fiber.StatusBadRequest, ErrGameOver
	case errors.Is(err, service.ErrNotHumanTurn):
		return fiber.StatusBadRequest, ErrNotHumanTurn
	default:
		return fiber.StatusBadRequest, ErrInvalidMove
	}
}

// Helper: build standard game response
func (h *HTTPHandler) buildGameResponse(gameID string, g *game.Game) GameResponse {
	return GameResponse{
		GameID: gameID,
		Grid:   g.CurrentGrid(),
		Turn:   g.NextTurn().String(),
		State:  g.State().String(),
		Moves:  g.Moves(),
		Players: PlayersInfo{
			X: playerInfo(g.Player(core.MarkX)),
			O: playerInfo(g.Player(core.MarkO)),
		},
	}
}

// Helper: execute computer move and update response
func (h *HTTPHandler) executeComputerMove(gameID string, response *GameResponse) error {
	result, err := h.svc.MakeComputerMove(gameID)
	if err != nil {
		return err
	}

	// Refresh game state after computer move
	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return err
	}

	// Update response fields
	response.Grid = g.CurrentGrid()
	response.Turn = g.NextTurn().String()
	response.State = g.State().String()
	response.Moves = g.Moves()
	response.LastMove = moveInfo(result)

	return nil
}

func moveInfo(result *game.MoveResult) *MoveInfo {
	if result == nil {
		return nil
	}
	return &MoveInfo{
		Move:      result.Move,
		Player:    result.Player.String(),
		Value:     result.Value,
		Nodes:     result.Nodes,
		ElapsedNS: int64(result.Elapsed),
	}
}
