package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/domain"
)

// getAccountIDFromContext extracts the authenticated account's UUID from the
// request context. The authentication middleware is responsible for putting
// it there; a missing ID means the route was wired without the middleware.
func getAccountIDFromContext(r *http.Request) (uuid.UUID, bool) {
	accountID, ok := r.Context().Value(shared.AccountIDContextKey).(uuid.UUID)
	if !ok || accountID == uuid.Nil {
		return uuid.Nil, false
	}
	return accountID, true
}

// requireAccountID extracts the authenticated account ID or writes a 401.
// Returns false when the error response has already been written.
func requireAccountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	accountID, ok := getAccountIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Account ID not found or invalid")
		return uuid.Nil, false
	}
	return accountID, true
}

// parseLimitQuery reads the "limit" query parameter.
// Missing, empty, malformed or non-positive values all fall back to 0,
// which the services translate into their own defaults.
func parseLimitQuery(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// parseDateField parses a wire-format date, returning a field-tagged
// validation error on failure.
func parseDateField(field, raw string) (time.Time, error) {
	t, err := time.Parse(DateFormat, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	return t, nil
}
