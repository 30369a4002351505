package usecase

import (
	"context"

	"careconnect/internal/domain/entity"
)

// AlertUsecase exposes a caretaker's alerts
type AlertUsecase interface {
	// List returns the caretaker's alerts, newest first
	List(ctx context.Context, caretakerID string, limit int) ([]*entity.Alert, error)

	// UnreadCount counts the caretaker's unread alerts
	UnreadCount(ctx context.Context, caretakerID string) (int, error)

	// MarkRead flags an alert as read
	MarkRead(ctx context.Context, caretakerID, alertID string) error

	// Dismiss deletes an alert
	Dismiss(ctx context.Context, caretakerID, alertID string) error

	// Snapshot returns the artifact stored with an alert
	Snapshot(ctx context.Context, caretakerID, alertID string) ([]byte, string, error)
}
