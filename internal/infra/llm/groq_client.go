// Package llm talks to the hosted language models behind the assistant and the activity
// analyzer.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"careconnect/config"
	"careconnect/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const providerChat = "groq"

// chatRequest is the OpenAI-compatible chat-completions body.
type chatRequest struct {
	Model       string                      `json:"model"`
	Messages    []service.CompletionMessage `json:"messages"`
	MaxTokens   int                         `json:"max_tokens,omitempty"`
	Temperature float64                     `json:"temperature,omitempty"`
	Stream      bool                        `json:"stream"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int                       `json:"index"`
		Message      service.CompletionMessage `json:"message"`
		FinishReason string                    `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type chatClient struct {
	cfg     config.ChatModelConfig
	http    *http.Client
	guard   *guard[string]
	metrics service.MonitorMetrics
	logger  *slog.Logger
}

// NewChatClient creates the chat-completions client used by the assistant.
func NewChatClient(cfg *config.Config, limiter *rate.Limiter, metrics service.MonitorMetrics, logger *slog.Logger) service.ChatCompletionService {
	return &chatClient{
		cfg:     cfg.LLM.Chat,
		http:    &http.Client{Timeout: cfg.LLM.Chat.Timeout},
		guard:   newGuard[string](providerChat, cfg.LLM, limiter, logger),
		metrics: metrics,
		logger:  logger,
	}
}

// Complete returns the content of the first choice.
func (c *chatClient) Complete(ctx context.Context, messages []service.CompletionMessage) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.Wrap(ErrUnavailable, "chat api key not configured")
	}

	text, err := c.guard.do(ctx, func() (string, error) {
		return c.complete(ctx, messages)
	})
	c.metrics.LLMRequest(providerChat, err)
	if err != nil {
		return "", err
	}

	return text, nil
}

func (c *chatClient) complete(ctx context.Context, messages []service.CompletionMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return "", errors.Errorf("chat api error (status %d): %s", resp.StatusCode, string(snippet))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode response")
	}
	if len(result.Choices) == 0 {
		return "", errors.New("chat api returned no choices")
	}

	c.logger.Debug("Chat completion finished",
		slog.String("model", result.Model),
		slog.String("finish_reason", result.Choices[0].FinishReason),
		slog.Int("total_tokens", result.Usage.TotalTokens),
	)

	return result.Choices[0].Message.Content, nil
}
