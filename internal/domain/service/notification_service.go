package service

import (
	"context"

	"careconnect/internal/domain/entity"
)

// NotificationService pushes a rendered message to device tokens.
type NotificationService interface {
	// SendBatchNotification sends msg to at most one FCM multicast batch of tokens.
	// invalidTokens lists tokens FCM reported as unregistered or malformed; they should be deactivated.
	SendBatchNotification(ctx context.Context, tokens []string, msg entity.PushMessage) (successCount, failureCount int, invalidTokens []string, err error)
}
