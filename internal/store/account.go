// Package store provides abstractions and implementations for data persistence.
//
// Each record table is append-oriented: rows are created, scanned back in
// order, and never physically deleted. Per-account views are computed at
// read time (newest first, truncated to a limit), never by rewriting
// storage.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/periodspal/periodspal-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// The caller must have hashed the password already; plaintext never
	// reaches the store layer.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByUsername retrieves an account by its username.
	// Username matching is exact and case-sensitive.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// Update modifies an existing account's profile fields (name, age,
	// height, weight). Username and credentials are immutable here.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// WithTx returns a new AccountStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) AccountStore
}
