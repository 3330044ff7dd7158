// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout
// the application, facilitating consistent and DRY testing across the
// codebase. Instead of defining inline mocks in individual test files,
// these standardized mock implementations can be reused.
//
// Each mock exposes a function field per interface method; when the field
// is set the mock delegates to it, otherwise a simple in-memory default
// backed by the mock's exported data fields is used.
//
// Usage:
//
//	import "github.com/periodspal/periodspal-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    accountStore := mocks.NewMockAccountStore()
//	    accountStore.GetByUsernameFn = func(ctx context.Context, username string) (*domain.Account, error) {
//	        return nil, store.ErrAccountNotFound
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
