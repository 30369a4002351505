package repository

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when an assistant session does not exist.
var ErrSessionNotFound = errors.New("assistant session not found")

// ChatRepository stores patient/caretaker conversations.
type ChatRepository interface {
	// AddMessage appends a message to msg.ChatID and assigns its ID.
	AddMessage(ctx context.Context, msg *entity.ChatMessage) error

	// ListMessages returns the conversation oldest first, limited to the latest limit messages.
	ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.ChatMessage, error)

	// LatestMessage returns the newest message, or nil for an empty conversation.
	LatestMessage(ctx context.Context, chatID string) (*entity.ChatMessage, error)

	// Clear deletes every message of a conversation.
	Clear(ctx context.Context, chatID string) (int, error)
}

// AssistantRepository stores health assistant sessions.
type AssistantRepository interface {
	CreateSession(ctx context.Context, session *entity.HealthChatSession) error
	FindSession(ctx context.Context, id string) (*entity.HealthChatSession, error)
	ListSessions(ctx context.Context, userID string) ([]*entity.HealthChatSession, error)
	DeleteSession(ctx context.Context, id string) error

	// AddMessage appends a turn and bumps the session's LastModified.
	AddMessage(ctx context.Context, msg *entity.HealthChatMessage) error

	// ListMessages returns the session's turns oldest first.
	ListMessages(ctx context.Context, sessionID string, limit int) ([]*entity.HealthChatMessage, error)
}
