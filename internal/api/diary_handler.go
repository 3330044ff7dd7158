package api

import (
	"net/http"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/service"
)

// DiaryHandler handles private diary API requests.
//
// Notes and symptoms are private health data: handlers log entry IDs,
// never entry content.
type DiaryHandler struct {
	diaryService   service.DiaryService
	accountService service.AccountService
}

// NewDiaryHandler creates a new DiaryHandler with the given dependencies.
func NewDiaryHandler(
	diaryService service.DiaryService,
	accountService service.AccountService,
) *DiaryHandler {
	return &DiaryHandler{
		diaryService:   diaryService,
		accountService: accountService,
	}
}

// Add handles POST /api/diary.
func (h *DiaryHandler) Add(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req DiaryEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	date, err := parseDateField("date", req.Date)
	if err != nil {
		HandleAPIError(w, r, err, "Invalid date")
		return
	}

	symptoms := make([]domain.Symptom, len(req.Symptoms))
	for i, s := range req.Symptoms {
		symptoms[i] = domain.Symptom(s)
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.diaryService.AddEntry(r.Context(), account.Username, date, symptoms, req.Notes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newDiaryEntryResponse(entry))
}

// History handles GET /api/diary.
func (h *DiaryHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entries, err := h.diaryService.History(r.Context(), account.Username, parseLimitQuery(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	out := make([]DiaryEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = newDiaryEntryResponse(entry)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
