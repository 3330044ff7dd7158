package store

import (
	"context"
	"database/sql"

	"github.com/periodspal/periodspal-api/internal/domain"
)

// DiaryStore defines the interface for diary entry persistence.
type DiaryStore interface {
	// Create appends a new diary entry. Entries are private to the owning
	// account and never updated or deleted.
	// Returns validation errors from the domain DiaryEntry if data is invalid.
	Create(ctx context.Context, entry *domain.DiaryEntry) error

	// ListByUsername retrieves the account's diary entries sorted by
	// creation time descending, truncated to limit (0 means no limit).
	// Returns an empty slice, not an error, when the account has none.
	ListByUsername(ctx context.Context, username string, limit int) ([]*domain.DiaryEntry, error)

	// WithTx returns a new DiaryStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) DiaryStore
}
