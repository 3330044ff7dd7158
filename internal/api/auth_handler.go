package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/service"
	"github.com/periodspal/periodspal-api/internal/service/auth"
	"github.com/periodspal/periodspal-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	accountService service.AccountService
	jwtService     auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	accountService service.AccountService,
	jwtService auth.JWTService,
) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		jwtService:     jwtService,
	}
}

// Register handles the /api/auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountService.Register(
		r.Context(),
		req.Username,
		req.Password,
		req.Name,
		req.Age,
		req.HeightCm,
		req.WeightKg,
	)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), account.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "account_id", account.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		AccountID:   account.ID,
		AccessToken: token,
	})
}

// Login handles the /api/auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown usernames and wrong passwords answer identically.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), account.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "account_id", account.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		AccountID:   account.ID,
		AccessToken: token,
	})
}
