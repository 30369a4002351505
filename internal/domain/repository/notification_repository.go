// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"careconnect/internal/domain/entity"
)

// NotificationRepository stores push delivery logs.
type NotificationRepository interface {
	// CreateNotificationLog persists a single notification log entry.
	CreateNotificationLog(ctx context.Context, log *entity.NotificationLog) error

	// BatchCreateNotificationLogs persists multiple notification log entries in one statement.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// FindLogsByReference lists the deliveries made for an alert or dose key.
	FindLogsByReference(ctx context.Context, referenceID string) ([]*entity.NotificationLog, error)
}
