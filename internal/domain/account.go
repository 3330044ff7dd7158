package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Account
var (
	ErrEmptyAccountID      = errors.New("account ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
)

// bcrypt rejects inputs longer than 72 bytes.
const maxPasswordLength = 72

// Account represents a registered user of the application.
// The username is the unique, case-sensitive key; demographic fields
// (name, age, height, weight) are copied into consultation requests
// as a snapshot at request time.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, held only during registration
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	HeightCm       int       `json:"height_cm"`
	WeightKg       int       `json:"weight_kg"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewAccount creates a new Account with the given credentials and profile.
// It generates a new UUID for the account ID and sets the creation timestamp.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the account structure with the plaintext
// password. The caller is responsible for hashing the password before storage.
func NewAccount(username, password, name string, age, heightCm, weightKg int) (*Account, error) {
	account := &Account{
		ID:        uuid.New(),
		Username:  username,
		Password:  password, // Plaintext password - must be hashed before storage
		Name:      name,
		Age:       age,
		HeightCm:  heightCm,
		WeightKg:  weightKg,
		CreatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Username == "" {
		return ErrEmptyUsername
	}

	if a.Password != "" {
		if len(a.Password) > maxPasswordLength {
			return ErrPasswordTooLong
		}
	} else {
		// When no plaintext password is present, the account must carry a
		// hashed password (the case for accounts loaded from the database).
		if a.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}
