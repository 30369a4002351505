package impl

import (
	"context"
	"strings"
	"testing"

	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/service"
	mockRepo "careconnect/internal/mocks/repository"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceFixtures struct {
	service        usecase.ChatUsecase
	userRepo       *mockRepo.MockUserRepository
	connectionRepo *mockRepo.MockConnectionRepository
	chatRepo       *mockRepo.MockChatRepository
	notifier       *mockUsecase.MockNotificationUsecase
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	t.Helper()

	fx := chatServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		chatRepo:       mockRepo.NewMockChatRepository(t),
		notifier:       mockUsecase.NewMockNotificationUsecase(t),
	}
	fx.service = NewChatService(ChatServiceParams{
		UserRepo:       fx.userRepo,
		ConnectionRepo: fx.connectionRepo,
		ChatRepo:       fx.chatRepo,
		Notifier:       fx.notifier,
		Logger:         newDiscardLogger(),
	})

	return fx
}

// expectPatientToCaretaker resolves the relation the way a patient-initiated call does:
// the patient has no outgoing requests, the caretaker has the accepted one.
func (fx chatServiceFixtures) expectPatientToCaretaker(ctx context.Context) {
	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "patient-1").Return(nil, nil)
	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
}

func TestChatService_Send_Text(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.expectPatientToCaretaker(ctx)
	fx.chatRepo.EXPECT().AddMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)

	var event *service.NotificationEvent
	fx.notifier.EXPECT().Dispatch(ctx, mock.Anything).
		Run(func(_ context.Context, e *service.NotificationEvent) { event = e }).
		Return()

	msg, err := fx.service.Send(ctx, "patient-1", "caretaker-1", &usecase.ChatInput{Text: "  I am at the park  "})

	require.NoError(t, err)
	assert.Equal(t, "caretaker-1_patient-1", msg.ChatID)
	assert.Equal(t, entity.MessageText, msg.Type)
	assert.Equal(t, "I am at the park", msg.Text)
	assert.False(t, msg.IsAutomated)

	require.NotNil(t, event)
	assert.Equal(t, entity.NotificationChat, event.Kind)
	assert.Equal(t, []string{"caretaker-1"}, event.RecipientIDs)
	assert.Equal(t, "New message from Pat", event.Title)
	assert.Equal(t, "I am at the park", event.Body)
}

func TestChatService_Send_MediaPreview(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.chatRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "caretaker-1").Return(testCaretaker(), nil)
	fx.notifier.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool { return e.Body == "Voice message" })).
		Return()

	_, err := fx.service.Send(ctx, "caretaker-1", "patient-1", &usecase.ChatInput{
		Type:     entity.MessageAudio,
		MediaURL: "https://cdn.example.com/voice.m4a",
	})

	require.NoError(t, err)
}

func TestChatService_Send_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		fx := createTestChatService(t)

		_, err := fx.service.Send(ctx, "patient-1", "caretaker-1", &usecase.ChatInput{Text: "   "})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
	})

	t.Run("image without url", func(t *testing.T) {
		fx := createTestChatService(t)

		_, err := fx.service.Send(ctx, "patient-1", "caretaker-1", &usecase.ChatInput{Type: entity.MessageImage})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not connected", func(t *testing.T) {
		fx := createTestChatService(t)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "patient-1").Return(nil, nil)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-9").Return(nil, nil)

		_, err := fx.service.Send(ctx, "patient-1", "caretaker-9", &usecase.ChatInput{Text: "hi"})
		assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
	})

	t.Run("self", func(t *testing.T) {
		fx := createTestChatService(t)

		_, err := fx.service.Send(ctx, "patient-1", "patient-1", &usecase.ChatInput{Text: "hi"})
		assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
	})
}

func TestChatService_SendAutomated_TruncatesPreview(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()
	long := strings.Repeat("é", 200)

	fx.expectPatientToCaretaker(ctx)
	fx.chatRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.notifier.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.Body == strings.Repeat("é", 120)+"..."
		})).
		Return()

	msg, err := fx.service.SendAutomated(ctx, "patient-1", "caretaker-1", long)

	require.NoError(t, err)
	assert.True(t, msg.IsAutomated)
	assert.Equal(t, long, msg.Text)
}

func TestChatService_List_ClampsLimit(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.chatRepo.EXPECT().ListMessages(ctx, "caretaker-1_patient-1", 100).Return(nil, nil).Once()
	fx.chatRepo.EXPECT().ListMessages(ctx, "caretaker-1_patient-1", 500).Return(nil, nil).Once()

	_, err := fx.service.List(ctx, "caretaker-1", "patient-1", 0)
	require.NoError(t, err)
	_, err = fx.service.List(ctx, "caretaker-1", "patient-1", 9999)
	require.NoError(t, err)
}

func TestChatService_HasUnread(t *testing.T) {
	ctx := context.Background()

	t.Run("peer sent last", func(t *testing.T) {
		fx := createTestChatService(t)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
		fx.chatRepo.EXPECT().LatestMessage(ctx, "caretaker-1_patient-1").Return(&entity.ChatMessage{SenderID: "patient-1"}, nil)

		unread, err := fx.service.HasUnread(ctx, "caretaker-1", "patient-1")
		require.NoError(t, err)
		assert.True(t, unread)
	})

	t.Run("empty chat", func(t *testing.T) {
		fx := createTestChatService(t)
		fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
		fx.chatRepo.EXPECT().LatestMessage(ctx, "caretaker-1_patient-1").Return(nil, nil)

		unread, err := fx.service.HasUnread(ctx, "caretaker-1", "patient-1")
		require.NoError(t, err)
		assert.False(t, unread)
	})
}

func TestChatService_Clear(t *testing.T) {
	fx := createTestChatService(t)
	ctx := context.Background()

	fx.connectionRepo.EXPECT().FindByCaretaker(ctx, "caretaker-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
	fx.chatRepo.EXPECT().Clear(ctx, "caretaker-1_patient-1").Return(7, nil)

	removed, err := fx.service.Clear(ctx, "caretaker-1", "patient-1")

	require.NoError(t, err)
	assert.Equal(t, 7, removed)
}
