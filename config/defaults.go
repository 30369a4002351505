package config

import (
	"strings"
	"time"

	"careconnect/internal/domain/constants"

	"github.com/pkg/errors"
)

const (
	defaultLeadWindow        = 10 * time.Minute
	defaultReminderSchedule  = "@every 1m"
	defaultSnapshotSchedule  = "0 0,12 * * *"
	defaultRetentionSchedule = "30 3 * * *"
	defaultHistoryRetention  = 30 * 24 * time.Hour
	defaultAnalysisWindow    = 12 * time.Hour
	defaultRadius            = 500
	defaultMinRadius         = 100
	defaultMaxRadius         = 5000
	defaultSimulatedLat      = 12.9716
	defaultSimulatedLng      = 77.5946
	defaultChatBaseURL       = "https://api.groq.com/openai/v1"
	defaultChatModel         = "llama-3.3-70b-versatile"
	defaultChatTemperature   = 0.7
	defaultChatMaxTokens     = 1024
	defaultAnalysisBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultAnalysisModel     = "gemini-pro"
	defaultLLMTimeout        = 30 * time.Second
	defaultLLMRateLimit      = 2
	defaultLLMBurst          = 4
	defaultBreakerFailures   = 5
	defaultBreakerTimeout    = 30 * time.Second
	defaultImageBaseURL      = "https://image.pollinations.ai/prompt/"
	defaultHistoryLimit      = 20
	defaultMQTTTopic         = "careconnect/patient/+/location"
	defaultBlobBucket        = "mem://"
	defaultMetricsPath       = "/metrics"
	defaultTokenDuration     = 24 * time.Hour
)

// ScheduleOff disables a monitor job.
const ScheduleOff = "off"

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(c.Worker.MaxRequestBodySize) == "" {
		c.Worker.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Auth.Provider == "" {
		c.Auth.Provider = constants.AuthProviderFirebase
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}

	m := &c.Monitor
	if m.LeadWindow <= 0 {
		m.LeadWindow = defaultLeadWindow
	}
	if m.ReminderSchedule == "" {
		m.ReminderSchedule = defaultReminderSchedule
	}
	if m.SnapshotSchedule == "" {
		m.SnapshotSchedule = defaultSnapshotSchedule
	}
	if m.RetentionSchedule == "" {
		m.RetentionSchedule = defaultRetentionSchedule
	}
	if m.HistoryRetention <= 0 {
		m.HistoryRetention = defaultHistoryRetention
	}
	if m.AnalysisWindow <= 0 {
		m.AnalysisWindow = defaultAnalysisWindow
	}
	if m.DefaultRadius <= 0 {
		m.DefaultRadius = defaultRadius
	}
	if m.MinRadius <= 0 {
		m.MinRadius = defaultMinRadius
	}
	if m.MaxRadius <= 0 {
		m.MaxRadius = defaultMaxRadius
	}
	if m.SimulatedLocation == (LatLng{}) {
		m.SimulatedLocation = LatLng{Lat: defaultSimulatedLat, Lng: defaultSimulatedLng}
	}

	l := &c.LLM
	if l.Chat.BaseURL == "" {
		l.Chat.BaseURL = defaultChatBaseURL
	}
	if l.Chat.Model == "" {
		l.Chat.Model = defaultChatModel
	}
	if l.Chat.Temperature == 0 {
		l.Chat.Temperature = defaultChatTemperature
	}
	if l.Chat.MaxTokens <= 0 {
		l.Chat.MaxTokens = defaultChatMaxTokens
	}
	if l.Chat.Timeout <= 0 {
		l.Chat.Timeout = defaultLLMTimeout
	}
	if l.Analysis.BaseURL == "" {
		l.Analysis.BaseURL = defaultAnalysisBaseURL
	}
	if l.Analysis.Model == "" {
		l.Analysis.Model = defaultAnalysisModel
	}
	if l.Analysis.Timeout <= 0 {
		l.Analysis.Timeout = defaultLLMTimeout
	}
	if l.RateLimit <= 0 {
		l.RateLimit = defaultLLMRateLimit
	}
	if l.Burst <= 0 {
		l.Burst = defaultLLMBurst
	}
	if l.Breaker.MaxFailures == 0 {
		l.Breaker.MaxFailures = defaultBreakerFailures
	}
	if l.Breaker.OpenTimeout <= 0 {
		l.Breaker.OpenTimeout = defaultBreakerTimeout
	}
	if l.ImageBaseURL == "" {
		l.ImageBaseURL = defaultImageBaseURL
	}
	if l.HistoryLimit <= 0 {
		l.HistoryLimit = defaultHistoryLimit
	}

	if c.MQTT != nil && c.MQTT.Topic == "" {
		c.MQTT.Topic = defaultMQTTTopic
	}
	if c.Blob.BucketURL == "" {
		c.Blob.BucketURL = defaultBlobBucket
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

// validate rejects settings that would otherwise fail silently at run time.
func (c *Config) validate() error {
	if c.Monitor.Timezone != "" {
		if _, err := time.LoadLocation(c.Monitor.Timezone); err != nil {
			return errors.Wrapf(err, "invalid monitor.timezone %q", c.Monitor.Timezone)
		}
	}

	return nil
}

// Location returns the configured wall-clock zone; an empty zone means UTC. New rejects
// zones that do not load, so the UTC fallback only covers hand-built configs.
func (m MonitorConfig) Location() *time.Location {
	if m.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// ScheduleDisabled reports whether schedule turns its job off.
func ScheduleDisabled(schedule string) bool {
	return strings.EqualFold(strings.TrimSpace(schedule), ScheduleOff)
}
