package api

import (
	"net/http"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/service"
)

// ConsultationHandler handles consultation request API requests.
type ConsultationHandler struct {
	consultationService service.ConsultationService
	accountService      service.AccountService
}

// NewConsultationHandler creates a new ConsultationHandler with the given dependencies.
func NewConsultationHandler(
	consultationService service.ConsultationService,
	accountService service.AccountService,
) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
		accountService:      accountService,
	}
}

// Request handles POST /api/consultations.
func (h *ConsultationHandler) Request(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req ConsultationCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	request, err := h.consultationService.Request(r.Context(), account.Username, req.Problem)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newConsultationResponse(request))
}

// History handles GET /api/consultations.
func (h *ConsultationHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requests, err := h.consultationService.History(r.Context(), account.Username, parseLimitQuery(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	out := make([]ConsultationResponse, len(requests))
	for i, request := range requests {
		out[i] = newConsultationResponse(request)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
