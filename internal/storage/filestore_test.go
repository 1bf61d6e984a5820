package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent.txt"))

	score, err := fs.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("missing file score = %d, expected 0", score)
	}
}

func TestFileStoreGarbage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "hello\n"},
		{"negative", "-5\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			fs := NewFileStore(path)
			score, err := fs.LoadHighScore()
			if err != nil {
				t.Fatalf("LoadHighScore() failed: %v", err)
			}
			if score != 0 {
				t.Errorf("score = %d, expected 0", score)
			}
		})
	}
}

func TestFileStoreRoundtrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))

	if err := fs.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	score, err := fs.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("score = %d, expected 42", score)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))

	fs.SaveHighScore(10)
	fs.SaveHighScore(25)

	score, _ := fs.LoadHighScore()
	if score != 25 {
		t.Errorf("score = %d, expected 25", score)
	}
}
