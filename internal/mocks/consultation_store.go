package mocks

import (
	"context"
	"database/sql"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/store"
)

// MockConsultationStore implements store.ConsultationStore for testing
type MockConsultationStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, request *domain.ConsultationRequest) error
	ListByUsernameFn func(ctx context.Context, username string, limit int) ([]*domain.ConsultationRequest, error)

	// Data for default implementation, in insertion order
	Requests    []*domain.ConsultationRequest
	CreateError error
	ListError   error
}

// NewMockConsultationStore creates a new mock store with initialized defaults
func NewMockConsultationStore() *MockConsultationStore {
	return &MockConsultationStore{}
}

// Create implements the ConsultationStore interface
func (m *MockConsultationStore) Create(ctx context.Context, request *domain.ConsultationRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, request)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Requests = append(m.Requests, request)
	return nil
}

// ListByUsername implements the ConsultationStore interface
func (m *MockConsultationStore) ListByUsername(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.ConsultationRequest, error) {
	if m.ListByUsernameFn != nil {
		return m.ListByUsernameFn(ctx, username, limit)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]*domain.ConsultationRequest, 0)
	for i := len(m.Requests) - 1; i >= 0; i-- {
		if m.Requests[i].Username != username {
			continue
		}
		result = append(result, m.Requests[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// WithTx implements the ConsultationStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockConsultationStore) WithTx(tx *sql.Tx) store.ConsultationStore {
	return m
}

// Verify interface compliance at compile time
var _ store.ConsultationStore = (*MockConsultationStore)(nil)
