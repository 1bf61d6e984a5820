package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/redkatdev/hovercat/internal/game"
)

// FileStore persists the high score as a single decimal integer in a plain
// text file. It is the fallback when the database cannot be opened.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed high score store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadHighScore reads the persisted high score. A missing or unreadable
// file degrades to 0, never an error the caller must handle.
func (f *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, nil
	}
	return score, nil
}

// SaveHighScore writes the high score as a decimal integer, creating the
// parent directory if needed.
func (f *FileStore) SaveHighScore(score int) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create high score directory: %w", err)
		}
	}
	data := []byte(strconv.Itoa(score))
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score file: %w", err)
	}
	return nil
}

var _ game.HighScoreStore = (*FileStore)(nil)
