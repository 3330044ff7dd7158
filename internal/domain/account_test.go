package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewAccount(t *testing.T) {
	account, err := NewAccount("alice", "pw1", "Alice", 24, 160, 55)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if account.Username != "alice" {
		t.Errorf("Expected username alice, got %s", account.Username)
	}

	if account.Password != "pw1" {
		t.Errorf("Expected plaintext password to be carried for hashing, got %s", account.Password)
	}

	if account.Name != "Alice" || account.Age != 24 || account.HeightCm != 160 || account.WeightKg != 55 {
		t.Errorf("Profile fields not carried: %+v", account)
	}

	if account.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty username
	_, err = NewAccount("", "pw1", "Alice", 24, 160, 55)
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test empty password
	_, err = NewAccount("alice", "", "Alice", 24, 160, 55)
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	// Test over-long password (bcrypt limit)
	_, err = NewAccount("alice", strings.Repeat("x", 73), "Alice", 24, 160, 55)
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestAccountValidate(t *testing.T) {
	validAccount := Account{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "hashedpassword123",
	}

	// Test valid account (no plaintext, hashed present - the loaded-from-db case)
	if err := validAccount.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidAccount := validAccount
	invalidAccount.ID = uuid.Nil
	if err := invalidAccount.Validate(); err != ErrEmptyAccountID {
		t.Errorf("Expected error %v, got %v", ErrEmptyAccountID, err)
	}

	// Test empty username
	invalidAccount = validAccount
	invalidAccount.Username = ""
	if err := invalidAccount.Validate(); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test neither plaintext nor hashed password
	invalidAccount = validAccount
	invalidAccount.HashedPassword = ""
	if err := invalidAccount.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}
