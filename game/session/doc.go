// Package session provides session and score persistence for the twenty48 game.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - UUID session identifiers
//   - File-backed session persistence (one JSON file per session)
//   - The persisted high score (a single integer in a JSON file)
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// FilePersistence stores sessions as JSON files and restores them through
// the engine's SetState. HighScoreFile keeps the single best score on disk
// in the shape {"highscore": N}.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and modify different
// sessions simultaneously. Internal locking ensures data consistency. Each
// individual game is still driven one move at a time by its owner.
//
// Usage:
//
//	persistence, err := session.NewFilePersistence(sessionsDir, configManager)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := session.NewManagerWithPersistence(persistence)
//
//	sess, err := manager.Create("", config)
//	sess, err = manager.Get(sessionID)
//
//	scores := session.NewHighScoreFile(session.DefaultHighScorePath())
//	best, err := scores.Load()
package session
