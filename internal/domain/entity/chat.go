package entity

import (
	"slices"
	"strings"
	"time"
)

// MessageType is the payload kind of a chat message.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageAudio MessageType = "audio"
	MessageImage MessageType = "image"
)

// ChatMessage is one message between a patient and a caretaker.
type ChatMessage struct {
	ID          string      `json:"id"`
	ChatID      string      `json:"chat_id"`
	SenderID    string      `json:"sender_id"`
	Type        MessageType `json:"type"`
	Text        string      `json:"text,omitempty"`
	MediaURL    string      `json:"media_url,omitempty"`
	IsAutomated bool        `json:"is_automated"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ChatID is the conversation id of two users: their ids sorted and joined by "_".
func ChatID(a, b string) string {
	ids := []string{a, b}
	slices.Sort(ids)

	return strings.Join(ids, "_")
}
