package usecase

import (
	"context"

	"careconnect/internal/domain/entity"
)

// CommandOutcome reports what happened to one command found in a reply
type CommandOutcome struct {
	Kind     string `json:"kind"`
	Accepted bool   `json:"accepted"`
	Detail   string `json:"detail,omitempty"`
	Ref      string `json:"ref,omitempty"`
}

// AssistantReply is the assistant's answer with its commands applied
type AssistantReply struct {
	Message  *entity.HealthChatMessage `json:"message"`
	Images   []string                  `json:"images,omitempty"`
	Commands []*CommandOutcome         `json:"commands,omitempty"`
}

// AssistantUsecase runs the health assistant conversations
type AssistantUsecase interface {
	CreateSession(ctx context.Context, userID, firstMessage string) (*entity.HealthChatSession, error)
	ListSessions(ctx context.Context, userID string) ([]*entity.HealthChatSession, error)
	Messages(ctx context.Context, userID, sessionID string) ([]*entity.HealthChatMessage, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error

	// Chat sends text to the assistant and applies the commands in its reply
	Chat(ctx context.Context, userID, sessionID, text string) (*AssistantReply, error)
}
