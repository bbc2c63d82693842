package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrGameFinished = errors.New("game is finished")

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	IsWon() bool
	GetScore() int

	// Move operations
	Move(direction Direction) (*MoveResult, error)
	CanMove(direction Direction) bool
	GetPossibleMoves() []Direction

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface. It owns a single grid and is
// driven synchronously, one move per call; it is not safe for concurrent use.
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: config,
		rng:    newRNG(config.Seed),
	}
	engine.state = engine.initState()

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with the classic configuration
func NewEngineWithDefaults() *GameEngine {
	engine, _ := NewEngine(DefaultConfig())
	return engine
}

// newRNG builds the spawn randomness source. A zero seed draws one from
// system entropy so production games differ run to run.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		} else {
			seed = time.Now().UnixNano()
		}
	}
	return rand.New(rand.NewSource(seed))
}

// initState builds a fresh state: empty grid plus the configured start tiles
func (e *GameEngine) initState() *GameState {
	grid := NewGrid(e.config.GridSize)
	for i := 0; i < e.config.StartTiles; i++ {
		if _, err := SpawnTile(grid, e.rng, e.config.FourProbability); err != nil {
			break
		}
	}

	return &GameState{
		Grid:         grid,
		Score:        0,
		Status:       StatusInProgress,
		ConfigName:   e.config.Name,
		MoveHistory:  []MoveHistoryEntry{},
		CurrentMoves: []MoveHistoryEntry{},
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if len(state.Grid) == 0 {
		return fmt.Errorf("state grid cannot be empty")
	}
	for _, row := range state.Grid {
		if len(row) != len(state.Grid) {
			return fmt.Errorf("state grid must be square")
		}
	}
	if state.Status == "" {
		state.Status = StatusInProgress
	}
	e.state = state
	return nil
}

// Reset resets the game to initial state, preserving cumulative history
func (e *GameEngine) Reset() *GameState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = e.initState()

	// Restore cumulative history and totals; clear only the current segment
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	e.state.CurrentMoves = []MoveHistoryEntry{}
	e.state.CurrentMovesCount = 0

	return e.state
}

// IsGameOver returns whether the game has reached a terminal state
func (e *GameEngine) IsGameOver() bool {
	return e.state.Status != StatusInProgress
}

// IsWon returns whether the player has reached the win value
func (e *GameEngine) IsWon() bool {
	return e.state.Status == StatusWon
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// Move slides the board in the given direction. On a changing move it adds
// the merge score, spawns one new tile, and re-evaluates won/lost status.
// Terminal states reject further moves until Reset.
func (e *GameEngine) Move(direction Direction) (*MoveResult, error) {
	dir, err := ParseDirection(string(direction))
	if err != nil {
		return nil, err
	}
	if e.IsGameOver() {
		return nil, ErrGameFinished
	}

	result, err := ApplyMove(e.state.Grid, dir)
	if err != nil {
		return nil, err
	}

	var spawn *Spawn
	if result.Changed {
		e.state.Score += result.ScoreDelta

		// A changing move always frees at least one cell, so the spawn
		// cannot fail here.
		spawn, err = SpawnTile(e.state.Grid, e.rng, e.config.FourProbability)
		if err != nil {
			return nil, fmt.Errorf("spawn after move: %w", err)
		}
		e.state.LastSpawn = spawn

		if HasWon(e.state.Grid, e.config.WinValue) {
			e.state.Status = StatusWon
		} else if !HasMoves(e.state.Grid) {
			e.state.Status = StatusLost
		}
	}

	result.NoMoves = !HasMoves(e.state.Grid)
	e.addMoveToHistory(dir, result, spawn)

	return result, nil
}

// CanMove checks whether a move in the given direction would change the board
func (e *GameEngine) CanMove(direction Direction) bool {
	if e.IsGameOver() {
		return false
	}

	probe := e.state.Grid.Clone()
	changed, _, err := ShiftGrid(probe, direction)
	return err == nil && changed
}

// GetPossibleMoves returns all directions that would change the board
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.rng = newRNG(config.Seed)
	e.state = e.initState()
	return nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// addMoveToHistory records a move in both the cumulative and current-segment histories
func (e *GameEngine) addMoveToHistory(dir Direction, result *MoveResult, spawn *Spawn) {
	entry := MoveHistoryEntry{
		Direction:  dir,
		ScoreDelta: result.ScoreDelta,
		Changed:    result.Changed,
		Spawn:      spawn,
		Score:      e.state.Score,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.state.TotalMoves + 1,
	}

	e.state.MoveHistory = append(e.state.MoveHistory, entry)
	e.state.TotalMoves++

	e.state.CurrentMoves = append(e.state.CurrentMoves, entry)
	e.state.CurrentMovesCount++
}
