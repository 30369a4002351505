package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := Begin(context.Background(), logger, OriginScheduler, slog.String("job", "reminder_tick"))

	requestID := GetRequestIDFromContext(ctx)
	require.NotEmpty(t, requestID)
	assert.Equal(t, OriginScheduler, GetOrigin(ctx))

	GetLoggerOrDefault(ctx, nil).Info("tick")
	assert.Contains(t, buf.String(), "request_id="+requestID)
	assert.Contains(t, buf.String(), "origin=scheduler")
	assert.Contains(t, buf.String(), "job=reminder_tick")
}

func TestWithCaller(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx = WithCaller(ctx, "patient-1")

	assert.Equal(t, "patient-1", GetCallerFromContext(ctx))
	GetLogger(ctx).Info("report")
	assert.Contains(t, buf.String(), "caller_id=patient-1")
}

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Empty(t, GetCallerFromContext(ctx))
	assert.Equal(t, OriginHTTP, GetOrigin(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
