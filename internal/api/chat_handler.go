package api

import (
	"net/http"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/chat"
)

// ChatHandler handles guidance responder API requests.
// The endpoint is public and stateless; questions are not persisted.
type ChatHandler struct {
	responder *chat.Responder
}

// NewChatHandler creates a new ChatHandler with the given dependencies.
func NewChatHandler(responder *chat.Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// Ask handles POST /api/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{
		Reply: h.responder.Reply(req.Question),
	})
}
