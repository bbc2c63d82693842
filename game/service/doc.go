// Package service provides the business logic layer for the twenty48 game.
//
// The service package implements:
//   - Multi-session game management
//   - Move processing with spawn and status evaluation
//   - High-score settlement against the persisted best score
//   - Move history tracking with pagination
//   - Configuration management and loading
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages game configuration loading and
// validation. HighScoreStore persists the single best score.
//
// Architecture:
//
// The service layer sits between the CLI entry points and the game engine,
// providing session isolation, configuration management, and business logic
// orchestration. Each session maintains its own game engine instance with
// independent state and randomness. The engine owns the board transitions;
// the service owns the composition: apply the move, settle the high score,
// and persist the session.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	scores := session.NewHighScoreFile(path)
//	gameService := service.NewGameService(sessionMgr, configMgr, scores, logger)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, sessionInfo.ID, engine.Left)
package service
