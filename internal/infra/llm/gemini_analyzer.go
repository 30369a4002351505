package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"careconnect/config"
	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const providerAnalysis = "gemini"

const analysisPrompt = `Analyze the following patient activity data and determine if there is a safety risk.
The patient is expected to be active during the day.

Data: %s

If the patient has been inactive for too long or shows abnormal patterns, return a JSON object with:
{ "riskLevel": "high" | "medium" | "low", "alert": "Reason for alert" }

Otherwise return:
{ "riskLevel": "low", "alert": null }

Return ONLY valid JSON.`

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type geminiAnalyzer struct {
	cfg     config.AnalysisModelConfig
	http    *http.Client
	guard   *guard[string]
	metrics service.MonitorMetrics
	logger  *slog.Logger
}

// NewActivityAnalyzer creates the Gemini backed activity analyzer.
func NewActivityAnalyzer(cfg *config.Config, limiter *rate.Limiter, metrics service.MonitorMetrics, logger *slog.Logger) service.ActivityAnalyzer {
	return &geminiAnalyzer{
		cfg:     cfg.LLM.Analysis,
		http:    &http.Client{Timeout: cfg.LLM.Analysis.Timeout},
		guard:   newGuard[string](providerAnalysis, cfg.LLM, limiter, logger),
		metrics: metrics,
		logger:  logger,
	}
}

// Analyze asks the model for a risk level. Output that is not the expected JSON degrades
// to a low risk without alert.
func (a *geminiAnalyzer) Analyze(ctx context.Context, sample *entity.ActivitySample) (*entity.RiskAssessment, error) {
	if a.cfg.APIKey == "" {
		return nil, errors.Wrap(ErrUnavailable, "analysis api key not configured")
	}

	data, err := json.Marshal(sample)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal activity sample")
	}

	text, err := a.guard.do(ctx, func() (string, error) {
		return a.generate(ctx, fmt.Sprintf(analysisPrompt, data))
	})
	a.metrics.LLMRequest(providerAnalysis, err)
	if err != nil {
		return nil, err
	}

	assessment, err := ParseAssessment(text)
	if err != nil {
		a.logger.Warn("Discarding malformed risk assessment",
			slog.String("patient_id", sample.PatientID),
			slog.Any("error", err),
		)

		return &entity.RiskAssessment{RiskLevel: entity.RiskLow}, nil
	}

	return assessment, nil
}

func (a *geminiAnalyzer) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(a.cfg.BaseURL, "/"), a.cfg.Model, url.QueryEscape(a.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return "", errors.Errorf("analysis api error (status %d): %s", resp.StatusCode, string(snippet))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode response")
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("analysis api returned no candidates")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}

// ParseAssessment decodes the model's JSON verdict, tolerating markdown code fences.
func ParseAssessment(text string) (*entity.RiskAssessment, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))

	var assessment entity.RiskAssessment
	if err := json.Unmarshal([]byte(cleaned), &assessment); err != nil {
		return nil, errors.Wrap(err, "invalid assessment json")
	}

	assessment.RiskLevel = entity.RiskLevel(strings.ToLower(string(assessment.RiskLevel)))
	if !assessment.RiskLevel.IsValid() {
		return nil, errors.Errorf("unknown risk level %q", assessment.RiskLevel)
	}
	if assessment.Alert != nil && strings.TrimSpace(*assessment.Alert) == "" {
		assessment.Alert = nil
	}

	return &assessment, nil
}
