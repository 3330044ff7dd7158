package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/periodspal/periodspal-api/internal/api/middleware"
	"github.com/periodspal/periodspal-api/internal/mocks"
	"github.com/periodspal/periodspal-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	okJWT := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			if tokenString == "valid-token" {
				return &auth.Claims{AccountID: accountID}, nil
			}
			return nil, auth.ErrInvalidToken
		},
	}

	newHandler := func(t *testing.T) (http.Handler, *uuid.UUID) {
		t.Helper()
		var gotID uuid.UUID
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := middleware.GetAccountID(r)
			require.True(t, ok)
			gotID = id
			w.WriteHeader(http.StatusOK)
		})
		return middleware.NewAuthMiddleware(okJWT).Authenticate(inner), &gotID
	}

	t.Run("valid token reaches handler with account ID", func(t *testing.T) {
		handler, gotID := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, accountID, *gotID)
	})

	t.Run("missing header", func(t *testing.T) {
		handler, _ := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header required")
	})

	t.Run("malformed header", func(t *testing.T) {
		handler, _ := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization format")
	})

	t.Run("invalid token", func(t *testing.T) {
		handler, _ := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		expiredJWT := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		handler := middleware.NewAuthMiddleware(expiredJWT).
			Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run for an expired token")
			}))

		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})
}

func TestGetAccountID_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	_, ok := middleware.GetAccountID(r)
	assert.False(t, ok)
}
