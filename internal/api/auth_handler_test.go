package api_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/periodspal/periodspal-api/internal/api"
	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/mocks"
	"github.com/periodspal/periodspal-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newAuthFixture() (*api.AuthHandler, *mocks.MockAccountStore) {
	accountStore := mocks.NewMockAccountStore()
	accountService := service.NewAccountService(
		accountStore,
		nil,
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{CompareFn: func(hashedPassword, password string) error {
			if hashedPassword == "hashed:"+password {
				return nil
			}
			return assert.AnError
		}},
		testLogger(),
	)
	jwtService := &mocks.MockJWTService{Token: "test-token"}
	return api.NewAuthHandler(accountService, jwtService), accountStore
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		handler, accountStore := newAuthFixture()

		body := `{"username":"alice","password":"s3cret","name":"Alice","age":28,"height_cm":165,"weight_kg":60}`
		r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, r)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "test-token", resp.AccessToken)
		assert.NotEmpty(t, resp.AccountID)

		stored, ok := accountStore.Accounts["alice"]
		require.True(t, ok)
		assert.Equal(t, "hashed:s3cret", stored.HashedPassword)
		assert.Empty(t, stored.Password)
	})

	t.Run("duplicate username answers 409", func(t *testing.T) {
		handler, _ := newAuthFixture()

		body := `{"username":"alice","password":"s3cret"}`
		first := httptest.NewRecorder()
		handler.Register(first, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, first.Code)

		second := httptest.NewRecorder()
		handler.Register(second, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Contains(t, second.Body.String(), "Username already exists")
	})

	t.Run("missing username answers 400", func(t *testing.T) {
		handler, accountStore := newAuthFixture()

		body := `{"password":"s3cret"}`
		w := httptest.NewRecorder()
		handler.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, accountStore.Accounts)
	})

	t.Run("missing password answers 400", func(t *testing.T) {
		handler, _ := newAuthFixture()

		body := `{"username":"alice"}`
		w := httptest.NewRecorder()
		handler.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		handler, _ := newAuthFixture()

		w := httptest.NewRecorder()
		handler.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username"`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	register := func(t *testing.T, handler *api.AuthHandler) {
		t.Helper()
		body := `{"username":"alice","password":"s3cret"}`
		w := httptest.NewRecorder()
		handler.Register(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("valid credentials", func(t *testing.T) {
		handler, _ := newAuthFixture()
		register(t, handler)

		body := `{"username":"alice","password":"s3cret"}`
		w := httptest.NewRecorder()
		handler.Login(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "test-token", resp.AccessToken)
	})

	t.Run("wrong password and unknown user answer identically", func(t *testing.T) {
		handler, _ := newAuthFixture()
		register(t, handler)

		wrongPassword := httptest.NewRecorder()
		handler.Login(wrongPassword, httptest.NewRequest(
			http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"alice","password":"nope"}`)))

		unknownUser := httptest.NewRecorder()
		handler.Login(unknownUser, httptest.NewRequest(
			http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"mallory","password":"s3cret"}`)))

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

		var a, b shared.ErrorResponse
		require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(unknownUser.Body.Bytes(), &b))
		assert.Equal(t, a.Error, b.Error)
	})

	t.Run("username matching is case-sensitive", func(t *testing.T) {
		handler, _ := newAuthFixture()
		register(t, handler)

		w := httptest.NewRecorder()
		handler.Login(w, httptest.NewRequest(
			http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"Alice","password":"s3cret"}`)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
