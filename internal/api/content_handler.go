package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/periodspal/periodspal-api/internal/content"
)

// ContentHandler serves the static educational modules. Public routes.
type ContentHandler struct{}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// List handles GET /api/content.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, content.List())
}

// Get handles GET /api/content/{slug}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	module, err := content.Get(slug)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, module)
}
