package logs

import (
	"log/slog"
	"testing"

	"careconnect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}

	for in, want := range tests {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "chatty"

	logger, err := New(Params{Config: cfg})

	require.Error(t, err)
	assert.Nil(t, logger)
}

func TestNew_DefaultServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"

	logger, err := New(Params{Config: cfg})

	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Equal(t, "careconnect", serviceName(cfg))
}
