package repository

import (
	"context"

	"careconnect/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository stores caretaker alerts.
type AlertRepository interface {
	// Create persists an alert and assigns its ID.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID retrieves an alert by ID.
	FindByID(ctx context.Context, id string) (*entity.Alert, error)

	// ListByCaretaker returns a caretaker's alerts, newest first, at most limit.
	ListByCaretaker(ctx context.Context, caretakerID string, limit int) ([]*entity.Alert, error)

	// CountUnread counts a caretaker's unread alerts.
	CountUnread(ctx context.Context, caretakerID string) (int, error)

	// MarkRead flags an alert as read.
	MarkRead(ctx context.Context, id string) error

	// Delete removes an alert.
	Delete(ctx context.Context, id string) error
}
