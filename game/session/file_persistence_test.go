package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/slidegrid/twenty48/game/config"
	"github.com/slidegrid/twenty48/game/engine"
)

func setupPersistence(t *testing.T) (*FilePersistence, *config.Manager) {
	t.Helper()

	configDir := t.TempDir()
	data, err := json.MarshalIndent(&engine.GameConfig{
		Name:            "Classic",
		Description:     "The classic 4x4 board",
		GridSize:        4,
		WinValue:        2048,
		StartTiles:      2,
		FourProbability: 0.1,
		Seed:            1,
	}, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "classic.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	configManager, err := config.NewManager(configDir)
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	persistence, err := NewFilePersistence(t.TempDir(), configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	return persistence, configManager
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	persistence, configManager := setupPersistence(t)

	manager := NewManagerWithPersistence(persistence)
	sess, err := manager.Create("game-1", configManager.GetDefault())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Play a couple of moves so the persisted state is non-trivial
	for _, dir := range []engine.Direction{engine.Left, engine.Up} {
		if _, err := sess.Engine.Move(dir); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
	}
	if err := manager.Save("game-1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := persistence.Load("game-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != "game-1" {
		t.Errorf("Expected ID game-1, got %s", loaded.ID)
	}
	if !loaded.Engine.GetState().Grid.Equal(sess.Engine.GetState().Grid) {
		t.Error("Loaded grid differs from saved grid")
	}
	if loaded.Engine.GetScore() != sess.Engine.GetScore() {
		t.Errorf("Loaded score %d differs from saved %d", loaded.Engine.GetScore(), sess.Engine.GetScore())
	}
	if loaded.Engine.GetState().TotalMoves != sess.Engine.GetState().TotalMoves {
		t.Error("Loaded move history differs from saved history")
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	persistence, _ := setupPersistence(t)

	if _, err := persistence.Load("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_ExistsAndDelete(t *testing.T) {
	persistence, configManager := setupPersistence(t)

	manager := NewManagerWithPersistence(persistence)
	if _, err := manager.Create("game-2", configManager.GetDefault()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if !persistence.Exists("game-2") {
		t.Error("Expected session file to exist after create")
	}

	if err := persistence.Delete("game-2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if persistence.Exists("game-2") {
		t.Error("Expected session file to be gone after delete")
	}
	if err := persistence.Delete("game-2"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	persistence, configManager := setupPersistence(t)

	manager := NewManagerWithPersistence(persistence)
	for _, id := range []string{"one", "two"} {
		if _, err := manager.Create(id, configManager.GetDefault()); err != nil {
			t.Fatalf("Failed to create session %s: %v", id, err)
		}
	}

	ids, err := persistence.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 persisted sessions, got %d", len(ids))
	}
}

func TestFilePersistence_RestoreThroughManager(t *testing.T) {
	persistence, configManager := setupPersistence(t)

	first := NewManagerWithPersistence(persistence)
	sess, err := first.Create("restore-me", configManager.GetDefault())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := sess.Engine.Move(engine.Left); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if err := first.Save("restore-me"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh manager sees only the persisted copy
	second := NewManagerWithPersistence(persistence)
	restored, err := second.Get("restore-me")
	if err != nil {
		t.Fatalf("Failed to restore session: %v", err)
	}
	if !restored.Engine.GetState().Grid.Equal(sess.Engine.GetState().Grid) {
		t.Error("Restored grid differs from the saved one")
	}
}
