package service

import (
	"time"

	"github.com/slidegrid/twenty48/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation at the service level.
// It wraps the engine result with the derived game status, spawn info, and
// the high-score bookkeeping the caller would otherwise have to do.
type MoveResult struct {
	Changed    bool              `json:"changed"`
	ScoreDelta int               `json:"score_delta"`
	GameState  *engine.GameState `json:"game_state"`
	Spawn      *engine.Spawn     `json:"spawn,omitempty"`

	// Final status aids
	Status        engine.Status      `json:"status"`
	GameOver      bool               `json:"game_over"`
	PossibleMoves []engine.Direction `json:"possible_moves,omitempty"`

	// High-score bookkeeping
	HighScore    int  `json:"high_score"`
	NewHighScore bool `json:"new_high_score,omitempty"`

	Events []GameEvent `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // "move", "merge", "spawn", "won", "lost", "high_score", "reset"
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	GridSize    int    `json:"grid_size"`
	WinValue    int    `json:"win_value"`
}
