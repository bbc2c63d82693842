package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// highScoreData is the on-disk shape: a single integer in a JSON object,
// e.g. {"highscore": 1234}.
type highScoreData struct {
	HighScore int `json:"highscore"`
}

// HighScoreFile persists the best score in a small JSON file. It implements
// service.HighScoreStore.
type HighScoreFile struct {
	path string
	mu   sync.Mutex
}

// NewHighScoreFile creates a high-score store backed by the given file path.
// The file is created lazily on the first save.
func NewHighScoreFile(path string) *HighScoreFile {
	return &HighScoreFile{path: path}
}

// DefaultHighScorePath returns the high-score location in the user's home
// directory, falling back to the working directory when home is unknown.
func DefaultHighScorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".twenty48_highscore.json"
	}
	return filepath.Join(home, ".twenty48_highscore.json")
}

// Load returns the persisted best score. A missing file reads as zero.
func (h *HighScoreFile) Load() (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *HighScoreFile) load() (int, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read high score file: %w", err)
	}

	var stored highScoreData
	if err := json.Unmarshal(data, &stored); err != nil {
		return 0, fmt.Errorf("failed to parse high score file: %w", err)
	}

	return stored.HighScore, nil
}

// Save writes the given score, replacing whatever is stored
func (h *HighScoreFile) Save(score int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.save(score)
}

func (h *HighScoreFile) save(score int) error {
	data, err := json.Marshal(highScoreData{HighScore: score})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create high score directory: %w", err)
		}
	}

	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}

	return nil
}

// UpdateIfHigher stores the score only when it beats the current best,
// reporting whether it did.
func (h *HighScoreFile) UpdateIfHigher(score int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.load()
	if err != nil {
		return false, err
	}
	if score <= current {
		return false, nil
	}

	if err := h.save(score); err != nil {
		return false, err
	}
	return true, nil
}

// Reset clears the stored best score
func (h *HighScoreFile) Reset() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := os.Remove(h.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove high score file: %w", err)
	}
	return nil
}
