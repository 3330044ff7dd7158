package shared_test

import (
	"context"
	"testing"

	"github.com/periodspal/periodspal-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTraceID(t *testing.T) {
	ctx := shared.SetTraceID(context.Background())

	traceID := shared.GetTraceID(ctx)
	require.NotEmpty(t, traceID)
	assert.Len(t, traceID, shared.TraceIDLength*2)

	other := shared.SetTraceID(context.Background())
	assert.NotEqual(t, traceID, shared.GetTraceID(other))
}

func TestGetTraceID_Missing(t *testing.T) {
	assert.Empty(t, shared.GetTraceID(context.Background()))
}
