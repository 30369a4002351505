package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"monitor": map[string]any{
			"leadWindow":       "10m",
			"hysteresisMeters": 0,
		},
		"llm": map[string]any{
			"chat": map[string]any{
				"apiKey": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "MONITOR_LEADWINDOW", want: "monitor.leadWindow"},
		{envKey: "MONITOR_HYSTERESISMETERS", want: "monitor.hysteresisMeters"},
		{envKey: "LLM_CHAT_APIKEY", want: "llm.chat.apiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_AppliesEnvOverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  env: develop
  serviceName: careconnect
http:
  port: 8080
monitor:
  leadWindow: 5m
  hysteresisMeters: 0
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))
	t.Setenv("MONITOR_HYSTERESISMETERS", "25")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	// search paths are resolved against the working directory
	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Minute, cfg.Monitor.LeadWindow)
	assert.Equal(t, 25.0, cfg.Monitor.HysteresisMeters)
	assert.Equal(t, "0 0,12 * * *", cfg.Monitor.SnapshotSchedule)
	assert.Equal(t, 500.0, cfg.Monitor.DefaultRadius)
	assert.Equal(t, LatLng{Lat: 12.9716, Lng: 77.5946}, cfg.Monitor.SimulatedLocation)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Chat.Model)
	assert.Equal(t, "firebase", cfg.Auth.Provider)
}

func TestMonitorConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, MonitorConfig{}.Location())
	assert.Equal(t, "Asia/Kolkata", MonitorConfig{Timezone: "Asia/Kolkata"}.Location().String())
}

func TestConfig_ValidateTimezone(t *testing.T) {
	tests := map[string]struct {
		zone    string
		wantErr bool
	}{
		"empty means utc": {zone: ""},
		"known zone":      {zone: "Asia/Kolkata"},
		"typo":            {zone: "Asia/Kolkatta", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &Config{Monitor: MonitorConfig{Timezone: tt.zone}}

			err := cfg.validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "monitor.timezone")

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestApplyDefaults_KeepsDisabledSchedules(t *testing.T) {
	cfg := &Config{Monitor: MonitorConfig{SnapshotSchedule: ScheduleOff}}

	cfg.applyDefaults()

	assert.Equal(t, ScheduleOff, cfg.Monitor.SnapshotSchedule)
	assert.True(t, ScheduleDisabled(cfg.Monitor.SnapshotSchedule))
	assert.Equal(t, "@every 1m", cfg.Monitor.ReminderSchedule)
	assert.False(t, ScheduleDisabled(cfg.Monitor.ReminderSchedule))
}
