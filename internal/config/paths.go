package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables that override the default data locations.
const (
	EnvDBPath      = "TYPER_DB"
	EnvResultsPath = "TYPER_RESULTS"
	EnvWordsDir    = "TYPER_WORDS_DIR"
)

// Paths are the on-disk locations the game reads and writes.
type Paths struct {
	DB       string // SQLite score database
	Results  string // Append-only plain text results log
	WordsDir string // Optional <category>.txt word list overrides
	Log      string // Debug log for local play
}

// DataDir returns ~/.typer, or .typer in the working directory if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".typer"
	}
	return filepath.Join(home, ".typer")
}

// DefaultPaths resolves locations from the environment, falling back to DataDir.
func DefaultPaths() Paths {
	dir := DataDir()
	return Paths{
		DB:       envOr(EnvDBPath, filepath.Join(dir, "scores.db")),
		Results:  envOr(EnvResultsPath, filepath.Join(dir, "results.txt")),
		WordsDir: envOr(EnvWordsDir, filepath.Join(dir, "words")),
		Log:      filepath.Join(dir, "typer.log"),
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return ExpandHome(v)
	}
	return fallback
}
