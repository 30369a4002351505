package notification

import (
	"context"
	"log/slog"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// MaxBatchSize is the FCM multicast limit.
const MaxBatchSize = 500

// Android notification channels registered by the mobile app.
const (
	channelAlerts  = "careconnect_alerts"
	channelGeneral = "careconnect_general"
)

// Messenger is the subset of *messaging.Client used for delivery.
type Messenger interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client Messenger
	logger *slog.Logger
}

// NewFirebaseService creates the FCM backed notification service
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.NotificationService {
	return newFirebaseService(client, logger)
}

func newFirebaseService(client Messenger, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendBatchNotification sends push notifications to at most MaxBatchSize device tokens
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg entity.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxBatchSize {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data:    msg.Data,
		Android: androidConfig(msg.Kind),
		APNS:    apnsConfig(msg.Kind),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])

			continue
		}
		s.logger.Warn("Push delivery failed",
			slog.String("kind", string(msg.Kind)),
			slog.Int("index", idx),
			slog.Any("error", sendResponse.Error),
		)
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

// androidConfig routes breaches, due doses and risk alerts to the high priority alerts channel.
func androidConfig(kind entity.NotificationKind) *messaging.AndroidConfig {
	if kind.Urgent() {
		return &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: channelAlerts, Sound: "default"},
		}
	}

	return &messaging.AndroidConfig{
		Priority:     "normal",
		Notification: &messaging.AndroidNotification{ChannelID: channelGeneral},
	}
}

func apnsConfig(kind entity.NotificationKind) *messaging.APNSConfig {
	priority := "5"
	aps := &messaging.Aps{ThreadID: string(kind)}
	if kind.Urgent() {
		priority = "10"
		aps.Sound = "default"
	}

	return &messaging.APNSConfig{
		Headers: map[string]string{"apns-priority": priority},
		Payload: &messaging.APNSPayload{Aps: aps},
	}
}
