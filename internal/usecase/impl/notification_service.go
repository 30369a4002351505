package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	logStatusSent   = "sent"
	logStatusFailed = "failed"
)

// ErrDeliveryUnavailable marks failures worth retrying: the device store could not be read.
var ErrDeliveryUnavailable = errors.New("push delivery temporarily unavailable")

type notificationService struct {
	txManager       repository.TransactionManager
	deviceRepo      repository.DeviceRepository
	publisher       service.EventPublisher
	realtime        service.RealtimePublisher
	notificationSvc service.NotificationService
	metrics         service.MonitorMetrics
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	DeviceRepo      repository.DeviceRepository
	Publisher       service.EventPublisher
	Realtime        service.RealtimePublisher
	NotificationSvc service.NotificationService
	Metrics         service.MonitorMetrics
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:       params.TxManager,
		deviceRepo:      params.DeviceRepo,
		publisher:       params.Publisher,
		realtime:        params.Realtime,
		notificationSvc: params.NotificationSvc,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
}

// Dispatch broadcasts to live clients first, then queues the push.
func (s *notificationService) Dispatch(ctx context.Context, event *service.NotificationEvent) {
	logger := requestLogger(ctx, s.logger)

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.Origin == "" {
		event.Origin = string(deliverycontext.GetOrigin(ctx))
	}

	payload, err := json.Marshal(event.Message())
	if err != nil {
		logger.Error("Failed to encode realtime payload", slog.Any("error", err))
	} else {
		for _, recipient := range event.RecipientIDs {
			rtErr := s.realtime.Publish(ctx, service.RealtimeEvent{
				Type:      realtimeType(event.Kind),
				Topic:     service.UserTopic(recipient),
				Timestamp: event.OccurredAt,
				Data:      payload,
			})
			if rtErr != nil {
				logger.Warn("Failed to broadcast realtime event",
					slog.String("recipient_id", recipient),
					slog.Any("error", rtErr),
				)
			}
		}
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		logger.Error("Failed to publish notification event",
			slog.String("kind", string(event.Kind)),
			slog.String("reference_id", event.ReferenceID),
			slog.Any("error", err),
		)
	}
}

func realtimeType(kind entity.NotificationKind) string {
	switch kind {
	case entity.NotificationReminderAdvance, entity.NotificationReminderDue:
		return service.RealtimeReminder
	case entity.NotificationChat:
		return service.RealtimeChat
	default:
		return service.RealtimeAlert
	}
}

// Deliver sends the event to every active device of its recipients.
func (s *notificationService) Deliver(ctx context.Context, event *service.NotificationEvent) (*entity.DeliverySummary, error) {
	logger := requestLogger(ctx, s.logger)
	summary := &entity.DeliverySummary{}

	if len(event.RecipientIDs) == 0 {
		logger.Info("No recipients to notify", slog.String("reference_id", event.ReferenceID))

		return summary, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, event.RecipientIDs)
	if err != nil {
		return nil, errors.Wrap(ErrDeliveryUnavailable, err.Error())
	}
	summary.Devices = len(devices)
	if len(devices) == 0 {
		logger.Info("No devices found for recipients", slog.String("reference_id", event.ReferenceID))

		return summary, nil
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if _, dup := deviceMap[device.FCMToken]; dup {
			continue
		}
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	msg := event.Message()
	data := make(map[string]string, len(msg.Data)+2)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["kind"] = string(msg.Kind)
	data["reference_id"] = event.ReferenceID
	msg.Data = data

	sent, failed, invalidTokens, logs := s.sendBatches(ctx, tokens, deviceMap, msg, event)
	summary.Sent = sent
	summary.Failed = failed
	s.metrics.PushDelivered(string(event.Kind), sent, failed)

	s.saveResults(ctx, invalidTokens, logs)

	logger.Info("Notification sending completed",
		slog.String("reference_id", event.ReferenceID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return summary, nil
}

// sendBatches sends in FCM-sized batches and builds one log per device
func (s *notificationService) sendBatches(
	ctx context.Context,
	tokens []string,
	deviceMap map[string]*entity.UserDevice,
	msg entity.PushMessage,
	event *service.NotificationEvent,
) (sent, failed int, invalidTokens []string, logs []*entity.NotificationLog) {
	logger := requestLogger(ctx, s.logger)

	for idx := 0; idx < len(tokens); idx += firebaseBatchSize {
		end := min(idx+firebaseBatchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalid, sendErr := s.notificationSvc.SendBatchNotification(ctx, batch, msg)
		if sendErr != nil {
			logger.Error("Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)
			for _, token := range batch {
				logs = append(logs, newNotificationLog(deviceMap[token], event, logStatusFailed, fmt.Sprintf("batch send error: %v", sendErr)))
			}

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)

		for _, token := range batch {
			status, errorMsg := logStatusSent, ""
			if slices.Contains(batchInvalid, token) {
				status, errorMsg = logStatusFailed, "invalid or unregistered token"
			}
			logs = append(logs, newNotificationLog(deviceMap[token], event, status, errorMsg))
		}
	}

	return sent, failed, invalidTokens, logs
}

func newNotificationLog(device *entity.UserDevice, event *service.NotificationEvent, status, errorMsg string) *entity.NotificationLog {
	return &entity.NotificationLog{
		ID:           uuid.New(),
		UserID:       device.UserID,
		DeviceID:     device.ID,
		Kind:         event.Kind,
		ReferenceID:  event.ReferenceID,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
}

// saveResults deactivates dead tokens and stores the logs in one transaction
func (s *notificationService) saveResults(ctx context.Context, invalidTokens []string, logs []*entity.NotificationLog) {
	if len(invalidTokens) == 0 && len(logs) == 0 {
		return
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if len(invalidTokens) > 0 {
			if _, err := txRepoFactory.NewDeviceRepository().DeactivateByTokens(ctx, invalidTokens); err != nil {
				return errors.Wrap(err, "failed to deactivate invalid tokens")
			}
		}
		if len(logs) > 0 {
			if err := txRepoFactory.NewNotificationRepository().BatchCreateNotificationLogs(ctx, logs); err != nil {
				return errors.Wrap(err, "failed to create notification logs")
			}
		}

		return nil
	})
	if err != nil {
		requestLogger(ctx, s.logger).Error("Failed to save notification results", slog.Any("error", err))
	}
}
