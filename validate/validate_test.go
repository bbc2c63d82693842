package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempConfig writes config JSON to a temp file and returns its path.
func writeTempConfig(t *testing.T, config string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpfile.Write([]byte(config)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

// hasError reports whether any accumulated message contains the substring.
func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test configuration",
		"grid_size": 4,
		"win_value": 2048,
		"start_tiles": 2,
		"four_probability": 0.1
	}`

	path := writeTempConfig(t, validConfig)
	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}
	if !hasError(result, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasError(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_MissingName(t *testing.T) {
	config := `{
		"description": "Test",
		"grid_size": 4,
		"win_value": 2048,
		"start_tiles": 2,
		"four_probability": 0.1
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to missing name")
	}
	if !hasError(result, "Missing required field: name") {
		t.Error("Expected missing name error")
	}
}

func TestValidateConfig_GridSizeBounds(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"grid_size": 1,
		"win_value": 2048,
		"start_tiles": 1,
		"four_probability": 0.1
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to grid size")
	}
	if !hasError(result, "grid_size must be between") {
		t.Error("Expected grid size bounds error")
	}
}

func TestValidateConfig_WinValueNotPowerOfTwo(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"grid_size": 4,
		"win_value": 100,
		"start_tiles": 2,
		"four_probability": 0.1
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to non-power-of-two target")
	}
	if !hasError(result, "power of two") {
		t.Error("Expected power of two error")
	}
}

func TestValidateConfig_TooManyStartTiles(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"grid_size": 2,
		"win_value": 8,
		"start_tiles": 5,
		"four_probability": 0.1
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to too many start tiles")
	}
	if !hasError(result, "start_tiles must be between") {
		t.Error("Expected start tiles bounds error")
	}
}

func TestValidateConfig_BadFourProbability(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"grid_size": 4,
		"win_value": 2048,
		"start_tiles": 2,
		"four_probability": 1.5
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to bad four probability")
	}
	if !hasError(result, "four_probability must be between") {
		t.Error("Expected four probability bounds error")
	}
}

func TestValidateConfig_InfeasibleTarget(t *testing.T) {
	// A 2x2 board tops out at 16 with two-only spawns; 2048 is unreachable.
	config := `{
		"name": "Test",
		"description": "Test",
		"grid_size": 2,
		"win_value": 2048,
		"start_tiles": 2,
		"four_probability": 0
	}`

	result := validateConfig(writeTempConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to infeasible target")
	}
	if !hasError(result, "Feasibility failure") {
		t.Error("Expected feasibility error")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{2, 4, 8, 1024, 2048} {
		if !isPowerOfTwo(n) {
			t.Errorf("Expected %d to be a power of two", n)
		}
	}
	for _, n := range []int{0, -4, 3, 100, 2047} {
		if isPowerOfTwo(n) {
			t.Errorf("Expected %d not to be a power of two", n)
		}
	}
}
