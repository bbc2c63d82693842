package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/slidegrid/twenty48/game/engine"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedAppName := "twenty48"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestKeyBindings(t *testing.T) {
	expected := map[string]engine.Direction{
		"w": engine.Up,
		"a": engine.Left,
		"s": engine.Down,
		"d": engine.Right,
	}
	for key, dir := range expected {
		if keyBindings[key] != dir {
			t.Errorf("Expected %s to map to %s, got %s", key, dir, keyBindings[key])
		}
	}
}

func TestDefaultDataDir(t *testing.T) {
	if defaultDataDir() == "" {
		t.Error("Data directory should have a default value")
	}
}

func TestInitializeServices(t *testing.T) {
	configDir := t.TempDir()
	data, err := json.MarshalIndent(&engine.GameConfig{
		Name:            "Classic",
		Description:     "The classic 4x4 board",
		GridSize:        4,
		WinValue:        2048,
		StartTiles:      2,
		FourProbability: 0.1,
	}, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "classic.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	gameService, err := initializeServices(configDir, t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	_, err := initializeServices("/non/existent/path", t.TempDir(), zerolog.Nop())
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

// Note: main() and runPlay() drive an interactive stdin loop, so they are
// exercised manually rather than in unit tests.
