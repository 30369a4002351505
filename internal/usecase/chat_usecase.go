package usecase

import (
	"context"

	"careconnect/internal/domain/entity"
)

// ChatInput is a message typed or recorded by a user
type ChatInput struct {
	Type     entity.MessageType `json:"type" validate:"omitempty,oneof=text audio image"`
	Text     string             `json:"text" validate:"max=4000"`
	MediaURL string             `json:"media_url" validate:"omitempty,url"`
}

// ChatUsecase handles patient/caretaker conversations
type ChatUsecase interface {
	// Send appends a message to the conversation between sender and peer
	Send(ctx context.Context, senderID, peerID string, input *ChatInput) (*entity.ChatMessage, error)

	// SendAutomated relays a message composed by the assistant on the sender's behalf
	SendAutomated(ctx context.Context, senderID, peerID, text string) (*entity.ChatMessage, error)

	// List returns the latest messages, oldest first
	List(ctx context.Context, userID, peerID string, limit int) ([]*entity.ChatMessage, error)

	// Clear deletes the conversation
	Clear(ctx context.Context, userID, peerID string) (int, error)

	// HasUnread reports whether the newest message came from the peer
	HasUnread(ctx context.Context, userID, peerID string) (bool, error)
}
