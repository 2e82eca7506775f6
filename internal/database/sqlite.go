// Package database provides SQLite implementation of the Store interface.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/puzzlewire/wordled/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Migrate runs database migrations. The primary key on date is what makes
// every write idempotent; there is deliberately no other insert path.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS puzzles (
			date TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			puzzle_number INTEGER NOT NULL,
			answer TEXT NOT NULL,
			hints TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			definition TEXT,
			source TEXT,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_puzzles_number ON puzzles(puzzle_number)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// UpsertPuzzle writes the full record for its date in a single statement.
// An existing row for the date is overwritten whole; the write is never
// partial.
func (s *SQLiteStore) UpsertPuzzle(ctx context.Context, record *models.PuzzleRecord) error {
	hintsJSON, err := json.Marshal(record.Hints)
	if err != nil {
		return fmt.Errorf("failed to encode hints: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (date, id, puzzle_number, answer, hints, difficulty, definition, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			id = excluded.id,
			puzzle_number = excluded.puzzle_number,
			answer = excluded.answer,
			hints = excluded.hints,
			difficulty = excluded.difficulty,
			definition = excluded.definition,
			source = excluded.source,
			created_at = excluded.created_at`,
		record.Date, record.ID, record.PuzzleNumber, record.Answer,
		string(hintsJSON), record.Difficulty, record.Definition, record.Source, record.CreatedAt,
	)
	return err
}

// GetPuzzleByDate retrieves the record for a date, or nil when absent.
func (s *SQLiteStore) GetPuzzleByDate(ctx context.Context, date string) (*models.PuzzleRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, id, puzzle_number, answer, hints, difficulty, definition, source, created_at
		FROM puzzles WHERE date = ?`, date)

	record, err := scanPuzzle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListRecentPuzzles returns up to limit records ordered by date descending.
func (s *SQLiteStore) ListRecentPuzzles(ctx context.Context, limit int) ([]*models.PuzzleRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, id, puzzle_number, answer, hints, difficulty, definition, source, created_at
		FROM puzzles ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.PuzzleRecord
	for rows.Next() {
		record, err := scanPuzzle(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPuzzle(row rowScanner) (*models.PuzzleRecord, error) {
	var r models.PuzzleRecord
	var hintsJSON string
	var def, src sql.NullString
	if err := row.Scan(&r.Date, &r.ID, &r.PuzzleNumber, &r.Answer,
		&hintsJSON, &r.Difficulty, &def, &src, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(hintsJSON), &r.Hints); err != nil {
		return nil, fmt.Errorf("failed to decode hints for %s: %w", r.Date, err)
	}
	r.Definition = def.String
	r.Source = src.String
	return &r, nil
}
