package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type recordedMetrics struct {
	service.MonitorMetrics
	mu    sync.Mutex
	calls map[string]int
	fails map[string]int
}

func newRecordedMetrics() *recordedMetrics {
	return &recordedMetrics{calls: map[string]int{}, fails: map[string]int{}}
}

func (m *recordedMetrics) LLMRequest(provider string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[provider]++
	if err != nil {
		m.fails[provider]++
	}
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Chat = config.ChatModelConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.7,
		MaxTokens:   1024,
		Timeout:     time.Second,
	}
	cfg.LLM.Analysis = config.AnalysisModelConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "gemini-pro",
		Timeout: time.Second,
	}
	cfg.LLM.RateLimit = 100
	cfg.LLM.Burst = 10
	cfg.LLM.Breaker.MaxFailures = 2
	cfg.LLM.Breaker.OpenTimeout = time.Minute

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChatClient_Complete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama","choices":[{"index":0,"message":{"role":"assistant","content":"Drink water."},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	metrics := newRecordedMetrics()
	client := NewChatClient(cfg, NewLimiter(cfg), metrics, discardLogger())

	text, err := client.Complete(context.Background(), []service.CompletionMessage{
		{Role: service.ChatRoleSystem, Content: "You are CareConnect AI"},
		{Role: service.ChatRoleUser, Content: "I feel dizzy"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Drink water.", text)
	assert.Equal(t, "llama-3.3-70b-versatile", got.Model)
	assert.Equal(t, 1024, got.MaxTokens)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, service.ChatRoleUser, got.Messages[1].Role)
	assert.Equal(t, 1, metrics.calls[providerChat])
	assert.Zero(t, metrics.fails[providerChat])
}

func TestChatClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	client := NewChatClient(cfg, NewLimiter(cfg), newRecordedMetrics(), discardLogger())
	msgs := []service.CompletionMessage{{Role: service.ChatRoleUser, Content: "hi"}}

	for range 2 {
		_, err := client.Complete(context.Background(), msgs)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}

	_, err := client.Complete(context.Background(), msgs)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, hits, "open breaker must not reach the provider")
}

func TestChatClient_MissingKey(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.LLM.Chat.APIKey = ""
	client := NewChatClient(cfg, NewLimiter(cfg), newRecordedMetrics(), discardLogger())

	_, err := client.Complete(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGuard_RateLimiterHonoursContext(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	g := newGuard[string]("test", cfg.LLM, limiter, discardLogger())
	call := func() (string, error) { return "ok", nil }

	out, err := g.do(context.Background(), call)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.do(ctx, call)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestActivityAnalyzer_Analyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Contents, 1) {
			assert.Contains(t, req.Contents[0].Parts[0].Text, `"patientId":"patient-1"`)
		}

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + "```json\\n{\\\"riskLevel\\\": \\\"HIGH\\\", \\\"alert\\\": \\\"No movement for 9 hours\\\"}\\n```" + `"}]}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	analyzer := NewActivityAnalyzer(cfg, NewLimiter(cfg), newRecordedMetrics(), discardLogger())

	got, err := analyzer.Analyze(context.Background(), &entity.ActivitySample{PatientID: "patient-1"})

	require.NoError(t, err)
	assert.Equal(t, entity.RiskHigh, got.RiskLevel)
	require.NotNil(t, got.Alert)
	assert.Equal(t, "No movement for 9 hours", *got.Alert)
}

func TestActivityAnalyzer_MalformedOutputFallsBackToLow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"I think the patient is fine"}]}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	analyzer := NewActivityAnalyzer(cfg, NewLimiter(cfg), newRecordedMetrics(), discardLogger())

	got, err := analyzer.Analyze(context.Background(), &entity.ActivitySample{PatientID: "patient-1"})

	require.NoError(t, err)
	assert.Equal(t, entity.RiskLow, got.RiskLevel)
	assert.Nil(t, got.Alert)
}

func TestParseAssessment(t *testing.T) {
	got, err := ParseAssessment(`{ "riskLevel": "low", "alert": null }`)
	require.NoError(t, err)
	assert.Equal(t, entity.RiskLow, got.RiskLevel)
	assert.Nil(t, got.Alert)

	got, err = ParseAssessment("```json\n{\"riskLevel\":\"medium\",\"alert\":\"  \"}\n```")
	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, got.RiskLevel)
	assert.Nil(t, got.Alert)

	_, err = ParseAssessment(`{"riskLevel":"critical"}`)
	assert.Error(t, err)
}
