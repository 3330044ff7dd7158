package mocks

import (
	"context"
	"database/sql"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/store"
)

// MockCycleStore implements store.CycleStore for testing
type MockCycleStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, record *domain.CycleRecord) error
	ListByUsernameFn func(ctx context.Context, username string, limit int) ([]*domain.CycleRecord, error)

	// Data for default implementation, in insertion order
	Records     []*domain.CycleRecord
	CreateError error
	ListError   error
}

// NewMockCycleStore creates a new mock store with initialized defaults
func NewMockCycleStore() *MockCycleStore {
	return &MockCycleStore{}
}

// Create implements the CycleStore interface
func (m *MockCycleStore) Create(ctx context.Context, record *domain.CycleRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Records = append(m.Records, record)
	return nil
}

// ListByUsername implements the CycleStore interface.
// The default implementation returns the account's records newest first,
// mirroring the ordering contract of the real store.
func (m *MockCycleStore) ListByUsername(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.CycleRecord, error) {
	if m.ListByUsernameFn != nil {
		return m.ListByUsernameFn(ctx, username, limit)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]*domain.CycleRecord, 0)
	for i := len(m.Records) - 1; i >= 0; i-- {
		if m.Records[i].Username != username {
			continue
		}
		result = append(result, m.Records[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// WithTx implements the CycleStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockCycleStore) WithTx(tx *sql.Tx) store.CycleStore {
	return m
}

// Verify interface compliance at compile time
var _ store.CycleStore = (*MockCycleStore)(nil)
