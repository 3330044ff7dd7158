package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Username string `json:"username" validate:"required"`
	CycleLen int    `json:"cycle_len" validate:"required,min=20,max=45"`
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(
		http.MethodPost,
		"/test",
		strings.NewReader(`{"username":"alice","cycle_len":28}`),
	)

	var req taggedRequest
	require.NoError(t, shared.DecodeJSON(r, &req))
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, 28, req.CycleLen)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"username":`))

	var req taggedRequest
	assert.Error(t, shared.DecodeJSON(r, &req))
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     taggedRequest
		wantErr bool
	}{
		{"valid", taggedRequest{Username: "alice", CycleLen: 28}, false},
		{"missing username", taggedRequest{CycleLen: 28}, true},
		{"cycle too short", taggedRequest{Username: "alice", CycleLen: 19}, true},
		{"cycle too long", taggedRequest{Username: "alice", CycleLen: 46}, true},
		{"lower bound", taggedRequest{Username: "alice", CycleLen: 20}, false},
		{"upper bound", taggedRequest{Username: "alice", CycleLen: 45}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := shared.ValidateRequest(tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
