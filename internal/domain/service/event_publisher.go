package service

import (
	"context"
	"strconv"
	"time"

	"careconnect/internal/domain/entity"
)

// NotificationEvent is a push fan-out request processed by the worker.
type NotificationEvent struct {
	RequestID    string                  `json:"request_id,omitempty"` // For distributed tracing
	Origin       string                  `json:"origin,omitempty"`     // delivery that raised the event
	Kind         entity.NotificationKind `json:"kind"`
	ReferenceID  string                  `json:"reference_id"`  // alert id or dose key
	RecipientIDs []string                `json:"recipient_ids"` // user ids whose devices receive the push
	Title        string                  `json:"title"`
	Body         string                  `json:"body"`
	Data         map[string]string       `json:"data,omitempty"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

// Message converts the event into the push payload.
func (e *NotificationEvent) Message() entity.PushMessage {
	return entity.PushMessage{
		Kind:  e.Kind,
		Title: e.Title,
		Body:  e.Body,
		Data:  e.Data,
	}
}

// Attributes are the message attributes push subscriptions filter on.
func (e *NotificationEvent) Attributes() map[string]string {
	attributes := map[string]string{
		"kind":         string(e.Kind),
		"reference_id": e.ReferenceID,
		"urgent":       strconv.FormatBool(e.Kind.Urgent()),
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}
	if e.Origin != "" {
		attributes["origin"] = e.Origin
	}
	if patientID := e.Data["patient_id"]; patientID != "" {
		attributes["patient_id"] = patientID
	}

	return attributes
}

// OrderingKey keeps the events about one patient in order; events without a patient are
// ordered per first recipient.
func (e *NotificationEvent) OrderingKey() string {
	if patientID := e.Data["patient_id"]; patientID != "" {
		return "patient/" + patientID
	}
	if len(e.RecipientIDs) > 0 {
		return "user/" + e.RecipientIDs[0]
	}

	return ""
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
