package store

import (
	"context"
	"database/sql"

	"github.com/periodspal/periodspal-api/internal/domain"
)

// CycleStore defines the interface for cycle record persistence.
type CycleStore interface {
	// Create appends a new cycle record. Records are never updated or
	// deleted; repeated identical submissions create repeated rows.
	// Returns validation errors from the domain CycleRecord if data is invalid.
	Create(ctx context.Context, record *domain.CycleRecord) error

	// ListByUsername retrieves the account's cycle records sorted by
	// creation time descending, truncated to limit (0 means no limit).
	// Returns an empty slice, not an error, when the account has none.
	ListByUsername(ctx context.Context, username string, limit int) ([]*domain.CycleRecord, error)

	// WithTx returns a new CycleStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CycleStore
}
