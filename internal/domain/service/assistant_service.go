package service

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrModelUnavailable is returned when a hosted model cannot be reached right now.
var ErrModelUnavailable = errors.New("llm provider unavailable")

// ChatRole is the role of a chat-completion message.
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// CompletionMessage is one message sent to a chat-completion model.
type CompletionMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatCompletionService produces the assistant's next reply.
type ChatCompletionService interface {
	Complete(ctx context.Context, messages []CompletionMessage) (string, error)
}

// ActivityAnalyzer grades a patient's recent activity.
type ActivityAnalyzer interface {
	Analyze(ctx context.Context, sample *entity.ActivitySample) (*entity.RiskAssessment, error)
}
