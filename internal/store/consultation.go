package store

import (
	"context"
	"database/sql"

	"github.com/periodspal/periodspal-api/internal/domain"
)

// ConsultationStore defines the interface for consultation request persistence.
//
// There is deliberately no update operation: status and doctor_reply are
// reserved for a clinician-facing collaborator that does not exist yet.
type ConsultationStore interface {
	// Create appends a new consultation request with its account snapshot.
	// Returns validation errors from the domain ConsultationRequest if data is invalid.
	Create(ctx context.Context, request *domain.ConsultationRequest) error

	// ListByUsername retrieves the account's consultation requests sorted
	// by request time descending, truncated to limit (0 means no limit).
	// Returns an empty slice, not an error, when the account has none.
	ListByUsername(ctx context.Context, username string, limit int) ([]*domain.ConsultationRequest, error)

	// WithTx returns a new ConsultationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ConsultationStore
}
