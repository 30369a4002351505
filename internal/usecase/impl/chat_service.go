package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultChatLimit = 100
	maxChatLimit     = 500
	pushPreviewRunes = 120
)

type chatService struct {
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
	chatRepo       repository.ChatRepository
	notifier       usecase.NotificationUsecase
	logger         *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ConnectionRepo repository.ConnectionRepository
	ChatRepo       repository.ChatRepository
	Notifier       usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewChatService creates the chat use case.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		userRepo:       params.UserRepo,
		connectionRepo: params.ConnectionRepo,
		chatRepo:       params.ChatRepo,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// connected requires an accepted relation between the two users, in either direction.
func (s *chatService) connected(ctx context.Context, userID, peerID string) error {
	if userID == peerID {
		return errors.WithStack(domainerrors.ErrNotConnected)
	}
	_, err := acceptedRelation(ctx, s.connectionRepo, userID, peerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotConnected) {
		return err
	}
	_, err = acceptedRelation(ctx, s.connectionRepo, peerID, userID)

	return err
}

func (s *chatService) Send(ctx context.Context, senderID, peerID string, input *usecase.ChatInput) (*entity.ChatMessage, error) {
	msgType := input.Type
	if msgType == "" {
		msgType = entity.MessageText
	}

	text := strings.TrimSpace(input.Text)
	switch msgType {
	case entity.MessageText:
		if text == "" {
			return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
		}
	case entity.MessageAudio, entity.MessageImage:
		if input.MediaURL == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "media_url is required")
		}
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown message type %q", msgType)
	}

	if err := s.connected(ctx, senderID, peerID); err != nil {
		return nil, err
	}

	return s.store(ctx, &entity.ChatMessage{
		ChatID:   entity.ChatID(senderID, peerID),
		SenderID: senderID,
		Type:     msgType,
		Text:     text,
		MediaURL: input.MediaURL,
	}, peerID)
}

func (s *chatService) SendAutomated(ctx context.Context, senderID, peerID, text string) (*entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
	}
	if err := s.connected(ctx, senderID, peerID); err != nil {
		return nil, err
	}

	return s.store(ctx, &entity.ChatMessage{
		ChatID:      entity.ChatID(senderID, peerID),
		SenderID:    senderID,
		Type:        entity.MessageText,
		Text:        text,
		IsAutomated: true,
	}, peerID)
}

func (s *chatService) store(ctx context.Context, msg *entity.ChatMessage, peerID string) (*entity.ChatMessage, error) {
	msg.CreatedAt = time.Now().UTC()
	if err := s.chatRepo.AddMessage(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	title := "New message"
	if sender, err := s.userRepo.FindByID(ctx, msg.SenderID); err == nil && sender.Name != "" {
		title = "New message from " + sender.Name
	}

	s.notifier.Dispatch(ctx, &service.NotificationEvent{
		Kind:         entity.NotificationChat,
		ReferenceID:  msg.ID,
		RecipientIDs: []string{peerID},
		Title:        title,
		Body:         preview(msg),
		Data: map[string]string{
			"chat_id":   msg.ChatID,
			"sender_id": msg.SenderID,
		},
		OccurredAt: msg.CreatedAt,
	})

	return msg, nil
}

func preview(msg *entity.ChatMessage) string {
	switch msg.Type {
	case entity.MessageAudio:
		return "Voice message"
	case entity.MessageImage:
		return "Photo"
	}

	if utf8.RuneCountInString(msg.Text) <= pushPreviewRunes {
		return msg.Text
	}

	return string([]rune(msg.Text)[:pushPreviewRunes]) + "..."
}

func (s *chatService) List(ctx context.Context, userID, peerID string, limit int) ([]*entity.ChatMessage, error) {
	if err := s.connected(ctx, userID, peerID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultChatLimit
	case limit > maxChatLimit:
		limit = maxChatLimit
	}

	messages, err := s.chatRepo.ListMessages(ctx, entity.ChatID(userID, peerID), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

func (s *chatService) Clear(ctx context.Context, userID, peerID string) (int, error) {
	if err := s.connected(ctx, userID, peerID); err != nil {
		return 0, err
	}

	removed, err := s.chatRepo.Clear(ctx, entity.ChatID(userID, peerID))
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear chat")
	}

	requestLogger(ctx, s.logger).Info("Chat cleared", slog.Int("removed", removed))

	return removed, nil
}

func (s *chatService) HasUnread(ctx context.Context, userID, peerID string) (bool, error) {
	if err := s.connected(ctx, userID, peerID); err != nil {
		return false, err
	}

	latest, err := s.chatRepo.LatestMessage(ctx, entity.ChatID(userID, peerID))
	if err != nil {
		return false, errors.Wrap(err, "failed to load latest message")
	}

	return latest != nil && latest.SenderID == peerID, nil
}
