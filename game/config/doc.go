// Package config provides configuration management for the twenty48 game.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board size (grid_size)
//   - Win value (the tile value that ends the game in a win)
//   - Number of start tiles and the 4-tile spawn probability
//   - An optional RNG seed for reproducible games
//
// Available Configurations:
//
// The shipped presets cover several board shapes:
//   - classic: the standard 4x4 board to 2048
//   - mini: a 3x3 board to 64 for quick games
//   - big: a roomier 5x5 board to 2048
//   - sprint: a 4x4 board to 256
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("classic")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
package config
