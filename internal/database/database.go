// Package database provides the data access layer.
package database

import (
	"context"

	"github.com/puzzlewire/wordled/internal/models"
)

// Store defines the interface for puzzle persistence. UpsertPuzzle is the
// single write path: it is keyed uniquely on the record's date and
// overwrites any existing row for that date in full, so concurrent runs
// for the same date can never produce duplicates.
type Store interface {
	UpsertPuzzle(ctx context.Context, record *models.PuzzleRecord) error
	GetPuzzleByDate(ctx context.Context, date string) (*models.PuzzleRecord, error)
	ListRecentPuzzles(ctx context.Context, limit int) ([]*models.PuzzleRecord, error)

	// Lifecycle
	Close() error
	Migrate() error
}
