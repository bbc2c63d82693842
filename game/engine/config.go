package engine

import "fmt"

// DefaultConfig returns the classic 4x4 game to 2048
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:            "Classic",
		Description:     "The classic 4x4 board, first to 2048 wins",
		GridSize:        DefaultGridSize,
		WinValue:        DefaultWinValue,
		StartTiles:      DefaultStartTiles,
		FourProbability: DefaultFourProbability,
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config cannot be nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate grid size
	if config.GridSize < MinGridSize || config.GridSize > MaxGridSize {
		return fmt.Errorf("config validation: grid_size must be between %d and %d, got %d",
			MinGridSize, MaxGridSize, config.GridSize)
	}

	// Validate win value: a power of two large enough to need at least two merges
	if config.WinValue < MinWinValue {
		return fmt.Errorf("config validation: win_value must be at least %d, got %d",
			MinWinValue, config.WinValue)
	}
	if !isPowerOfTwo(config.WinValue) {
		return fmt.Errorf("config validation: win_value must be a power of two, got %d", config.WinValue)
	}

	// Validate start tiles
	if config.StartTiles < 1 {
		return fmt.Errorf("config validation: start_tiles must be at least 1, got %d", config.StartTiles)
	}
	if max := config.GridSize * config.GridSize; config.StartTiles > max {
		return fmt.Errorf("config validation: start_tiles must fit on a %dx%d board (max %d), got %d",
			config.GridSize, config.GridSize, max, config.StartTiles)
	}

	// Validate spawn weighting
	if config.FourProbability < 0 || config.FourProbability > 1 {
		return fmt.Errorf("config validation: four_probability must be between 0 and 1, got %v",
			config.FourProbability)
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
