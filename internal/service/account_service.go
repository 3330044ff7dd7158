package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/service/auth"
	"github.com/periodspal/periodspal-api/internal/store"
)

// AccountService provides account registration, authentication and lookup.
type AccountService interface {
	// Register creates a new account with a hashed password.
	// Empty username or password is rejected with domain.ErrMissingRequiredField
	// before any store access. Returns store.ErrUsernameExists if the
	// username is already taken.
	Register(ctx context.Context, username, password, name string, age, heightCm, weightKg int) (*domain.Account, error)

	// Authenticate verifies the claimed identity. It returns the account on
	// success and ErrInvalidCredentials otherwise; unknown usernames and
	// wrong passwords produce the same error.
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)

	// Lookup retrieves an account by username.
	// Returns store.ErrAccountNotFound if no such account exists.
	Lookup(ctx context.Context, username string) (*domain.Account, error)

	// GetByID retrieves an account by its ID.
	// Returns store.ErrAccountNotFound if no such account exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// UpdateProfile updates the account's demographic fields. Past
	// consultation requests keep the snapshot taken at request time.
	UpdateProfile(ctx context.Context, id uuid.UUID, name string, age, heightCm, weightKg int) (*domain.Account, error)
}

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	accountStore store.AccountStore
	db           *sql.DB
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService.
// db may be nil, in which case writes go directly to the store instead of
// running inside a transaction.
func NewAccountService(
	accountStore store.AccountStore,
	db *sql.DB,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) AccountService {
	return &AccountServiceImpl{
		accountStore: accountStore,
		db:           db,
		hasher:       hasher,
		verifier:     verifier,
		logger:       logger.With("component", "account_service"),
	}
}

// inWriteTx runs fn against a transaction-aware store when a database
// handle is configured, against the plain store otherwise.
func (s *AccountServiceImpl) inWriteTx(ctx context.Context, fn func(txStore store.AccountStore) error) error {
	if s.db == nil {
		return fn(s.accountStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(s.accountStore.WithTx(tx))
	})
}

// Register creates a new account with a hashed password
func (s *AccountServiceImpl) Register(
	ctx context.Context,
	username, password, name string,
	age, heightCm, weightKg int,
) (*domain.Account, error) {
	// Reject before touching the store.
	if username == "" {
		return nil, fmt.Errorf("%w: username", domain.ErrMissingRequiredField)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password", domain.ErrMissingRequiredField)
	}

	account, err := domain.NewAccount(username, password, name, age, heightCm, weightKg)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(account.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	err = s.inWriteTx(ctx, func(txStore store.AccountStore) error {
		return txStore.Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("registration rejected: username taken",
				"username", username)
			return nil, err
		}
		s.logger.Error("failed to create account",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account registered",
		"account_id", account.ID,
		"username", account.Username)
	return account, nil
}

// Authenticate verifies the claimed identity against the stored hash
func (s *AccountServiceImpl) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	account, err := s.accountStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			// Same failure as a wrong password.
			s.logger.Debug("login failed: unknown username", "username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up account for login",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch", "username", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("login succeeded",
		"account_id", account.ID,
		"username", account.Username)
	return account, nil
}

// Lookup retrieves an account by username
func (s *AccountServiceImpl) Lookup(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accountStore.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Error("failed to look up account",
				"error", err,
				"username", username)
		}
		return nil, err
	}
	return account, nil
}

// GetByID retrieves an account by its ID
func (s *AccountServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Error("failed to get account by ID",
				"error", err,
				"account_id", id)
		}
		return nil, err
	}
	return account, nil
}

// UpdateProfile updates the account's demographic fields
func (s *AccountServiceImpl) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	name string,
	age, heightCm, weightKg int,
) (*domain.Account, error) {
	var account *domain.Account
	err := s.inWriteTx(ctx, func(txStore store.AccountStore) error {
		var err error
		account, err = txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		account.Name = name
		account.Age = age
		account.HeightCm = heightCm
		account.WeightKg = weightKg

		return txStore.Update(ctx, account)
	})
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update account profile",
			"error", err,
			"account_id", id)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("account profile updated", "account_id", id)
	return account, nil
}
