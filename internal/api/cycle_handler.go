package api

import (
	"net/http"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/service"
)

// CycleHandler handles cycle tracking API requests.
type CycleHandler struct {
	cycleService   service.CycleService
	accountService service.AccountService
}

// NewCycleHandler creates a new CycleHandler with the given dependencies.
func NewCycleHandler(
	cycleService service.CycleService,
	accountService service.AccountService,
) *CycleHandler {
	return &CycleHandler{
		cycleService:   cycleService,
		accountService: accountService,
	}
}

// Record handles POST /api/cycles.
func (h *CycleHandler) Record(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req CycleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	lastStart, err := parseDateField("last_start", req.LastStart)
	if err != nil {
		HandleAPIError(w, r, err, "Invalid last_start date")
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	record, err := h.cycleService.Record(r.Context(), account.Username, lastStart, req.CycleLen)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newCycleResponse(record))
}

// History handles GET /api/cycles.
func (h *CycleHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	records, err := h.cycleService.History(r.Context(), account.Username, parseLimitQuery(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	out := make([]CycleResponse, len(records))
	for i, record := range records {
		out[i] = newCycleResponse(record)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
