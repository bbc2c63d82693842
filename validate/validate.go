// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board size bounds
//   - Target tile is a power of two and at least 8
//   - Start tile count fits on the board
//   - Four-spawn probability is a valid probability
//   - Feasibility: the target tile can actually be assembled on the board
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	GridSize        int     `json:"grid_size"`
	WinValue        int     `json:"win_value"`
	StartTiles      int     `json:"start_tiles"`
	FourProbability float64 `json:"four_probability"`
	Seed            int64   `json:"seed,omitempty"`
}

// Board size bounds accepted by the engine.
const (
	minGridSize = 2
	maxGridSize = 12
	minWinValue = 8
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	if config.GridSize < minGridSize || config.GridSize > maxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_size must be between %d and %d, got %d", minGridSize, maxGridSize, config.GridSize))
	}

	if config.WinValue < minWinValue {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("win_value must be at least %d, got %d", minWinValue, config.WinValue))
	} else if !isPowerOfTwo(config.WinValue) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("win_value must be a power of two, got %d", config.WinValue))
	}

	cells := config.GridSize * config.GridSize
	if config.StartTiles < 1 || config.StartTiles > cells {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_tiles must be between 1 and %d, got %d", cells, config.StartTiles))
	}

	if config.FourProbability < 0 || config.FourProbability > 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("four_probability must be between 0 and 1, got %g", config.FourProbability))
	}

	// Feasibility: a tile of 2^k needs 2^(k-1) twos on the board, so the
	// board must have room for the staircase leading up to the target.
	if result.Valid {
		exponent := int(math.Log2(float64(config.WinValue)))
		maxExponent := cells
		if config.FourProbability > 0 {
			maxExponent = cells + 1
		}
		if exponent > maxExponent {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Feasibility failure: target %d cannot be assembled on a %d-cell board", config.WinValue, cells))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d", config.GridSize, config.GridSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Target: %d", config.WinValue))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Start tiles: %d", config.StartTiles))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Four probability: %g", config.FourProbability))
		if config.Seed != 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Seeded: %d (reproducible spawns)", config.Seed))
		}
	}

	return result
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
