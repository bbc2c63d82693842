package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/slidegrid/twenty48/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	scores   HighScoreStore
	log      zerolog.Logger
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, scores HighScoreStore, log zerolog.Logger) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		scores:   scores,
		log:      log.With().Str("component", "game_service").Logger(),
	}
}

// getConfigID returns the config_id for a given config display name
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s' (available configs: %v)", ErrConfigNotFound, configName, configIDs)
				}
				return nil, fmt.Errorf("%w: '%s'", ErrConfigNotFound, configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate the ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info().Str("session_id", session.ID).Str("config", config.Name).Msg("session created")

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session. A changing move updates the
// score, spawns a tile, and may finish the game; a finished game also
// settles the persisted high score.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, direction engine.Direction) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	moveResult, err := sess.Engine.Move(direction)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidDirection) || errors.Is(err, engine.ErrGameFinished) {
			return nil, err
		}
		return nil, fmt.Errorf("move failed: %w", err)
	}

	state := sess.Engine.GetState()
	result := &MoveResult{
		Changed:       moveResult.Changed,
		ScoreDelta:    moveResult.ScoreDelta,
		GameState:     state,
		Spawn:         state.LastSpawn,
		Status:        state.Status,
		GameOver:      sess.Engine.IsGameOver(),
		PossibleMoves: sess.Engine.GetPossibleMoves(),
		Events:        s.extractMoveEvents(sess, direction, moveResult),
	}

	// Settle the high score against the running total
	improved, err := s.scores.UpdateIfHigher(state.Score)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist high score")
	} else if improved {
		result.NewHighScore = true
		result.Events = append(result.Events, GameEvent{
			Type:      "high_score",
			Message:   fmt.Sprintf("New high score: %d", state.Score),
			Timestamp: time.Now(),
		})
	}
	if best, err := s.scores.Load(); err == nil {
		result.HighScore = best
	}

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist session after move")
	}

	return result, nil
}

// Reset resets a game session to initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()

	if err := s.sessions.Save(sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist session after reset")
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns all available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// HighScore returns the persisted best score
func (s *gameServiceImpl) HighScore(ctx context.Context) (int, error) {
	return s.scores.Load()
}

// ResetHighScore clears the persisted best score
func (s *gameServiceImpl) ResetHighScore(ctx context.Context) error {
	return s.scores.Reset()
}

// extractMoveEvents builds the gameplay events produced by a single move
func (s *gameServiceImpl) extractMoveEvents(sess *Session, direction engine.Direction, result *engine.MoveResult) []GameEvent {
	now := time.Now()
	state := sess.Engine.GetState()

	if !result.Changed {
		return []GameEvent{{
			Type:      "move",
			Message:   fmt.Sprintf("Move %s changed nothing", direction),
			Timestamp: now,
		}}
	}

	events := []GameEvent{{
		Type:      "move",
		Message:   fmt.Sprintf("Moved %s", direction),
		Timestamp: now,
	}}

	if result.ScoreDelta > 0 {
		events = append(events, GameEvent{
			Type:      "merge",
			Message:   fmt.Sprintf("Merged tiles for %d points", result.ScoreDelta),
			Timestamp: now,
		})
	}

	if state.LastSpawn != nil {
		pos := state.LastSpawn.Pos
		events = append(events, GameEvent{
			Type:      "spawn",
			Message:   fmt.Sprintf("Spawned %d at (%d,%d)", state.LastSpawn.Value, pos.Row, pos.Col),
			Timestamp: now,
			Position:  &pos,
		})
	}

	switch state.Status {
	case engine.StatusWon:
		events = append(events, GameEvent{
			Type:      "won",
			Message:   fmt.Sprintf("Reached %d with score %d", sess.Config.WinValue, state.Score),
			Timestamp: now,
		})
	case engine.StatusLost:
		events = append(events, GameEvent{
			Type:      "lost",
			Message:   fmt.Sprintf("No moves left. Final score: %d", state.Score),
			Timestamp: now,
		})
	}

	return events
}
