package usecase

import (
	"context"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"
)

// NotificationUsecase routes notifications to live clients and to push delivery
type NotificationUsecase interface {
	// Dispatch broadcasts the event to the recipients' realtime topics and queues it for push
	// delivery. Failures are logged, never returned: a notification must not undo the action
	// that raised it.
	Dispatch(ctx context.Context, event *service.NotificationEvent)

	// Deliver fans the event out to the recipients' active devices. Called by the worker.
	Deliver(ctx context.Context, event *service.NotificationEvent) (*entity.DeliverySummary, error)
}
