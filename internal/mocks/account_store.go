package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, account *domain.Account) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	UpdateFn        func(ctx context.Context, account *domain.Account) error

	// Data for default implementation, keyed by username
	Accounts    map[string]*domain.Account
	CreateError error
	GetError    error
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[string]*domain.Account),
	}
}

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Accounts[account.Username]; exists {
		return store.ErrUsernameExists
	}

	m.Accounts[account.Username] = account
	return nil
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByUsername implements the AccountStore interface
func (m *MockAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	account, exists := m.Accounts[username]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// Update implements the AccountStore interface
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	existing, exists := m.Accounts[account.Username]
	if !exists {
		return store.ErrAccountNotFound
	}

	existing.Name = account.Name
	existing.Age = account.Age
	existing.HeightCm = account.HeightCm
	existing.WeightKg = account.WeightKg
	return nil
}

// WithTx implements the AccountStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}

// Verify interface compliance at compile time
var _ store.AccountStore = (*MockAccountStore)(nil)
