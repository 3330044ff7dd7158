package mocks

import (
	"context"
	"database/sql"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/store"
)

// MockDiaryStore implements store.DiaryStore for testing
type MockDiaryStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, entry *domain.DiaryEntry) error
	ListByUsernameFn func(ctx context.Context, username string, limit int) ([]*domain.DiaryEntry, error)

	// Data for default implementation, in insertion order
	Entries     []*domain.DiaryEntry
	CreateError error
	ListError   error
}

// NewMockDiaryStore creates a new mock store with initialized defaults
func NewMockDiaryStore() *MockDiaryStore {
	return &MockDiaryStore{}
}

// Create implements the DiaryStore interface
func (m *MockDiaryStore) Create(ctx context.Context, entry *domain.DiaryEntry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entry)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Entries = append(m.Entries, entry)
	return nil
}

// ListByUsername implements the DiaryStore interface
func (m *MockDiaryStore) ListByUsername(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.DiaryEntry, error) {
	if m.ListByUsernameFn != nil {
		return m.ListByUsernameFn(ctx, username, limit)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	result := make([]*domain.DiaryEntry, 0)
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].Username != username {
			continue
		}
		result = append(result, m.Entries[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// WithTx implements the DiaryStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockDiaryStore) WithTx(tx *sql.Tx) store.DiaryStore {
	return m
}

// Verify interface compliance at compile time
var _ store.DiaryStore = (*MockDiaryStore)(nil)
