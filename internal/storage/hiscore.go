package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile persists a single best-score integer in a plain-text
// file, overwritten wholesale on save. A missing or unparsable file reads
// as 0; this is never surfaced as an error.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile creates a high-score store backed by the given path.
// A leading ~ expands to the user's home directory.
func NewHighScoreFile(path string) *HighScoreFile {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &HighScoreFile{path: path}
}

// Load reads the stored high score, defaulting to 0 on any failure.
func (h *HighScoreFile) Load() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// Save overwrites the file with the new high score, creating parent
// directories as needed.
func (h *HighScoreFile) Save(score int) error {
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(h.path, []byte(strconv.Itoa(score)), 0o600)
}
