package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

// Defaults for computer players when the config leaves them unset.
const (
	DefaultAlgorithm = "alphabeta"
	DefaultHeuristic = "h2"
)

// Player is the complete game entity with all state
type Player struct {
	ID        string     `json:"id"`
	Mark      Mark       `json:"-"`
	Type      PlayerType `json:"type"`
	Algorithm string     `json:"algorithm,omitempty"` // Only for computer
	Heuristic string     `json:"heuristic,omitempty"` // Only for computer
}

// PlayerConfig for API requests and configuration
type PlayerConfig struct {
	Type      PlayerType `json:"type" validate:"required,oneof=1 2"`
	Algorithm string     `json:"algorithm,omitempty" validate:"omitempty,oneof=minimax alphabeta"`
	Heuristic string     `json:"heuristic,omitempty" validate:"omitempty,oneof=h1 h2"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, mark Mark) *Player {
	player := &Player{
		ID:   uuid.New().String(),
		Mark: mark,
		Type: config.Type,
	}

	if config.Type == PlayerComputer {
		player.Algorithm = config.Algorithm
		if player.Algorithm == "" {
			player.Algorithm = DefaultAlgorithm
		}
		player.Heuristic = config.Heuristic
		if player.Heuristic == "" {
			player.Heuristic = DefaultHeuristic
		}
	}

	return player
}
