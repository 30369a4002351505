package service

import (
	"context"
	"encoding/json"
	"time"
)

// RealtimeEvent is pushed to connected websocket clients.
type RealtimeEvent struct {
	Type      string          `json:"type"`
	Topic     string          `json:"topic"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Realtime event types.
const (
	RealtimeLocation = "location"
	RealtimeAlert    = "alert"
	RealtimeReminder = "reminder"
	RealtimeChat     = "chat"
)

// UserTopic is the topic every client of userID is subscribed to.
func UserTopic(userID string) string {
	return "user/" + userID
}

// RealtimePublisher broadcasts events to live clients.
type RealtimePublisher interface {
	Publish(ctx context.Context, event RealtimeEvent) error
}
