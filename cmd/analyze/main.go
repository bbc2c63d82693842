// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes board dimensions and
// spawn settings, estimates the work needed to reach the target tile, and
// highlights targets that cannot be built on the configured board.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	GridSize        int     `json:"grid_size"`
	WinValue        int     `json:"win_value"`
	StartTiles      int     `json:"start_tiles"`
	FourProbability float64 `json:"four_probability"`
}

func main() {
	configs := []string{
		"big.json",
		"classic.json",
		"mini.json",
		"sprint.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	cells := config.GridSize * config.GridSize

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d (%d cells)\n", config.GridSize, config.GridSize, cells)
	fmt.Printf("Target: %d\n", config.WinValue)
	fmt.Printf("Start Tiles: %d\n", config.StartTiles)
	fmt.Printf("Spawn Mix: %.0f%% twos, %.0f%% fours\n",
		(1-config.FourProbability)*100, config.FourProbability*100)

	// A tile of 2^k needs 2^(k-1) twos, so the largest tile that can ever be
	// assembled on the board is bounded by the cell count plus the incoming
	// spawn: 2^(cells+1) when every spawn is a four, 2^cells otherwise.
	exponent := int(math.Log2(float64(config.WinValue)))
	maxExponent := cells
	if config.FourProbability > 0 {
		maxExponent = cells + 1
	}

	if exponent > maxExponent {
		fmt.Printf("WARNING: target %d cannot be built on a %d-cell board (max reachable tile: %d)\n",
			config.WinValue, cells, 1<<maxExponent)
	} else {
		fmt.Printf("Target is reachable (max tile on this board: %d)\n", 1<<maxExponent)
	}

	// Lower bounds assuming every spawn is a two: building 2^k takes
	// 2^(k-1) - 1 merges and scores (k-1) * 2^k points along the way.
	mergesNeeded := config.WinValue/2 - 1
	scoreAtWin := (exponent - 1) * config.WinValue
	fmt.Printf("Minimum merges to build target: %d\n", mergesNeeded)
	fmt.Printf("Score when target is built from twos: %d\n", scoreAtWin)

	// Tight boards leave little room to maneuver near the end game.
	tilesAtTarget := exponent // one tile of each power from 2 up to the target
	if tilesAtTarget > cells-1 {
		fmt.Printf("NOTE: the staircase to %d needs %d distinct tiles on %d cells; expect a tight end game\n",
			config.WinValue, tilesAtTarget, cells)
	}
}
