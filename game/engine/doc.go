// Package engine provides the core game logic for the twenty48 game.
//
// The engine package implements the board mechanics including:
//   - Directional shift-and-merge of tile lines
//   - Weighted random tile spawning with injectable randomness
//   - Win and no-moves-remaining detection
//   - Game state management and move history
//   - Configuration validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines the board size, win value, and spawn weighting
// loaded from JSON files.
//
// The board primitives (ShiftGrid, ApplyMove, SpawnTile, HasMoves, HasWon)
// are pure functions over a Grid and can be used without a GameEngine.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameEngine.Move(engine.Left)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Tiles slide toward the chosen edge; adjacent equal tiles merge into their
// sum, each tile merging at most once per move. Every move that changes the
// board scores the sum of the merged values and spawns one new tile (2 with
// probability 0.9, 4 with probability 0.1). The game is won when a tile
// reaches the configured win value and lost when no move can change the
// board.
package engine
