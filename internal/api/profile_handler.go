package api

import (
	"net/http"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/service"
)

// ProfileHandler handles account profile API requests.
type ProfileHandler struct {
	accountService service.AccountService
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(accountService service.AccountService) *ProfileHandler {
	return &ProfileHandler{accountService: accountService}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProfileResponse(account))
}

// Update handles PUT /api/profile. Only the demographic fields change;
// consultation requests made before the update keep their snapshot.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountService.UpdateProfile(
		r.Context(),
		accountID,
		req.Name,
		req.Age,
		req.HeightCm,
		req.WeightKg,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProfileResponse(account))
}
