package http

import (
	"tictactoe/internal/core"
)

// Request types

type CreateGameRequest struct {
	X    core.PlayerConfig `json:"x" validate:"required"`
	O    core.PlayerConfig `json:"o" validate:"required"`
	Grid string            `json:"grid,omitempty"`
}

type MoveRequest struct {
	Move *int `json:"move" validate:"required,min=0,max=8"` // Cell index 0..8
}

type UndoRequest struct {
	Count int `json:"count,omitempty" validate:"omitempty,min=1,max=9"` // default: 1
}

type AnalyzeRequest struct {
	Grid string `json:"grid,omitempty"` // default: empty board
}

// Response types

type GameResponse struct {
	GameID   string      `json:"gameId"`
	Grid     string      `json:"grid"`
	Turn     string      `json:"turn"`  // "X" or "O"
	State    string      `json:"state"` // "ongoing", "x_wins", "o_wins", "draw"
	Moves    []int       `json:"moves"`
	Players  PlayersInfo `json:"players"`
	LastMove *MoveInfo   `json:"lastMove,omitempty"`
}

type PlayersInfo struct {
	X PlayerInfo `json:"x"`
	O PlayerInfo `json:"o"`
}

type PlayerInfo struct {
	Type      int    `json:"type"` // 1=human, 2=computer
	Algorithm string `json:"algorithm,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

type MoveInfo struct {
	Move      int    `json:"move"`
	Player    string `json:"player"` // "X" or "O"
	Value     int    `json:"value,omitempty"`
	Nodes     int    `json:"nodes,omitempty"`
	ElapsedNS int64  `json:"elapsedNs,omitempty"`
}

type BoardResponse struct {
	Grid  string `json:"grid"`
	Board string `json:"board"` // ASCII representation
}

type LegalMovesResponse struct {
	Grid  string `json:"grid"`
	Moves []int  `json:"moves"`
}

type AnalysisResponse struct {
	Runs   []AnalysisRunInfo `json:"runs"`
	Report string            `json:"report"`
}

type AnalysisRunInfo struct {
	Grid       string `json:"grid"`
	SideToMove string `json:"sideToMove"`
	Algorithm  string `json:"algorithm"`
	Heuristic  string `json:"heuristic"`
	BestMove   int    `json:"bestMove"`
	Value      int    `json:"value"`
	Nodes      int    `json:"nodes"`
	ElapsedNS  int64  `json:"elapsedNs"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Helper functions

func playerInfo(p *core.Player) PlayerInfo {
	return PlayerInfo{
		Type:      int(p.Type),
		Algorithm: p.Algorithm,
		Heuristic: p.Heuristic,
	}
}

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrInvalidMove       = "INVALID_MOVE"
	ErrNotHumanTurn      = "NOT_HUMAN_TURN"
	ErrGameOver          = "GAME_OVER"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInternalError     = "INTERNAL_ERROR"
	ErrStorageDisabled   = "STORAGE_DISABLED"
)
