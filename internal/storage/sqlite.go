// Package storage provides SQLite-based persistence for typing scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-typer/internal/config"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Record is a finished session to be saved.
type Record struct {
	SessionID string
	Category  string
	Score     int
	Words     int // Words spawned during the session
}

// ScoreEntry represents a single stored score.
type ScoreEntry struct {
	ID        int64
	SessionID string
	Category  string
	Score     int
	Words     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			category TEXT NOT NULL,
			score INTEGER NOT NULL,
			words INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_category ON scores(category);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(category, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_session ON scores(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(r Record) (int64, error) {
	if r.SessionID == "" || r.Category == "" {
		return 0, errors.New("storage: session id and category are required")
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (session_id, category, score, words) VALUES (?, ?, ?, ?)",
		r.SessionID, r.Category, r.Score, r.Words,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for a category, or across all
// categories when category is empty. Ties go to the earlier score.
func (s *Store) TopScores(category string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, category, score, words, created_at
		 FROM scores
		 WHERE ? = '' OR category = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		category, category, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// SessionScores retrieves every score recorded by one session, newest first.
func (s *Store) SessionScores(sessionID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, category, score, words, created_at
		 FROM scores
		 WHERE session_id = ?
		 ORDER BY id DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session scores: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Category, &e.Score, &e.Words, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for a category, or overall when empty.
// Returns 0 if no scores exist.
func (s *Store) HighScore(category string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE ? = '' OR category = ?",
		category, category,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for a category, or all scores when empty.
func (s *Store) ClearScores(category string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE ? = '' OR category = ?", category, category)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// CategoryStats contains aggregated statistics for a category.
type CategoryStats struct {
	Category   string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalWords int64
	LastPlayed time.Time
}

// AllCategoryStats retrieves statistics for every category that has been played.
func (s *Store) AllCategoryStats() (map[string]*CategoryStats, error) {
	rows, err := s.db.Query(
		`SELECT category, COUNT(*), MAX(score), AVG(score), SUM(words), MAX(created_at)
		 FROM scores
		 GROUP BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get category stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CategoryStats)
	for rows.Next() {
		var cs CategoryStats
		var lastPlayed any
		if err := rows.Scan(&cs.Category, &cs.GamesCount, &cs.HighScore, &cs.AvgScore, &cs.TotalWords, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.LastPlayed = parseTime(lastPlayed)
		stats[cs.Category] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
