package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreFile_MissingFileReadsZero(t *testing.T) {
	store := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.json"))

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for a missing file, got %d", score)
	}
}

func TestHighScoreFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	store := NewHighScoreFile(path)

	if err := store.Save(1234); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if score != 1234 {
		t.Errorf("Expected 1234, got %d", score)
	}

	// The on-disk shape is a single-key JSON object
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != `{"highscore":1234}` {
		t.Errorf("Unexpected file contents: %s", data)
	}
}

func TestHighScoreFile_UpdateIfHigher(t *testing.T) {
	store := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.json"))

	improved, err := store.UpdateIfHigher(100)
	if err != nil {
		t.Fatalf("UpdateIfHigher failed: %v", err)
	}
	if !improved {
		t.Error("Expected first score to improve on zero")
	}

	improved, err = store.UpdateIfHigher(50)
	if err != nil {
		t.Fatalf("UpdateIfHigher failed: %v", err)
	}
	if improved {
		t.Error("A lower score must not replace the best")
	}

	improved, err = store.UpdateIfHigher(100)
	if err != nil {
		t.Fatalf("UpdateIfHigher failed: %v", err)
	}
	if improved {
		t.Error("An equal score must not replace the best")
	}

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if score != 100 {
		t.Errorf("Expected 100, got %d", score)
	}
}

func TestHighScoreFile_Reset(t *testing.T) {
	store := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.json"))

	if err := store.Save(42); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 after reset, got %d", score)
	}

	// Resetting an already-missing file is not an error
	if err := store.Reset(); err != nil {
		t.Errorf("Reset on missing file failed: %v", err)
	}
}

func TestHighScoreFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	store := NewHighScoreFile(path)
	if _, err := store.Load(); err == nil {
		t.Error("Expected error for a corrupt high score file")
	}
}
