package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"careconnect/config"
	deliverycontext "careconnect/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsFailuresWithComponent(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "INSERT INTO user_devices", 0 }, assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "component=postgres")
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	buf, l := newBufferedGormLogger(true)
	long := "INSERT INTO notification_logs VALUES " + strings.Repeat("(1),", maxLoggedSQLLength)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return long, 1 }, nil)

	assert.Contains(t, buf.String(), "(truncated)")
	assert.Less(t, len(buf.String()), len(long))
}

func TestGormSlogLogger_QuietBelowInfoWithoutDebug(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(false)
	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE user_devices", 0 }, assert.AnError)

	out := reqBuf.String()
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "component=postgres")
}
