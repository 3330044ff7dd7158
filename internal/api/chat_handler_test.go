package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/periodspal/periodspal-api/internal/api"
	"github.com/periodspal/periodspal-api/internal/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Ask(t *testing.T) {
	handler := api.NewChatHandler(chat.NewResponder())

	t.Run("matched keyword", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Ask(w, httptest.NewRequest(
			http.MethodPost, "/api/chat", strings.NewReader(`{"question":"my period is late"}`)))

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Reply, "late")
	})

	t.Run("no match falls back", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Ask(w, httptest.NewRequest(
			http.MethodPost, "/api/chat", strings.NewReader(`{"question":"hello"}`)))

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, chat.FallbackReply, resp.Reply)
	})

	t.Run("empty question answers 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Ask(w, httptest.NewRequest(
			http.MethodPost, "/api/chat", strings.NewReader(`{"question":""}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContentHandler(t *testing.T) {
	handler := api.NewContentHandler()

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/content", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var modules []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &modules))
		assert.Len(t, modules, 4)
	})

	t.Run("get by slug", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/api/content/{slug}", handler.Get)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content/diet", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Diet Tips")
	})

	t.Run("unknown slug answers 404", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/api/content/{slug}", handler.Get)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
