package impl

import (
	"context"
	"strings"
	"testing"

	"careconnect/internal/domain/command"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	mockRepo "careconnect/internal/mocks/repository"
	mockSvc "careconnect/internal/mocks/service"
	mockUsecase "careconnect/internal/mocks/usecase"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assistantServiceFixtures struct {
	service        usecase.AssistantUsecase
	userRepo       *mockRepo.MockUserRepository
	connectionRepo *mockRepo.MockConnectionRepository
	assistantRepo  *mockRepo.MockAssistantRepository
	completion     *mockSvc.MockChatCompletionService
	chats          *mockUsecase.MockChatUsecase
	medicines      *mockUsecase.MockMedicineUsecase
	metrics        *mockSvc.MockMonitorMetrics
}

func createTestAssistantService(t *testing.T) assistantServiceFixtures {
	t.Helper()

	fx := assistantServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		assistantRepo:  mockRepo.NewMockAssistantRepository(t),
		completion:     mockSvc.NewMockChatCompletionService(t),
		chats:          mockUsecase.NewMockChatUsecase(t),
		medicines:      mockUsecase.NewMockMedicineUsecase(t),
		metrics:        mockSvc.NewMockMonitorMetrics(t),
	}
	parser, err := command.NewParser()
	require.NoError(t, err)
	fx.service = NewAssistantService(AssistantServiceParams{
		UserRepo:       fx.userRepo,
		ConnectionRepo: fx.connectionRepo,
		AssistantRepo:  fx.assistantRepo,
		Completion:     fx.completion,
		Parser:         parser,
		Chats:          fx.chats,
		Medicines:      fx.medicines,
		Metrics:        fx.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func patientSession() *entity.HealthChatSession {
	return &entity.HealthChatSession{ID: "session-1", UserID: "patient-1", Role: entity.RolePatient, Title: "Headache"}
}

// expectPatientTurn sets up a patient chat turn up to the model call.
func (fx assistantServiceFixtures) expectPatientTurn(ctx context.Context) {
	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.assistantRepo.EXPECT().FindSession(ctx, "session-1").Return(patientSession(), nil)
	fx.assistantRepo.EXPECT().ListMessages(ctx, "session-1", 20).Return([]*entity.HealthChatMessage{
		{Role: entity.AssistantRoleUser, Content: "I have a headache"},
		{Role: entity.AssistantRoleModel, Content: "Drink some water."},
	}, nil)
	fx.connectionRepo.EXPECT().FindAcceptedByPatient(ctx, "patient-1").Return([]*entity.ConnectionRequest{acceptedRequest()}, nil)
}

func TestAssistantService_Chat_PlainReply(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.expectPatientTurn(ctx)

	var stored []*entity.HealthChatMessage
	fx.assistantRepo.EXPECT().AddMessage(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, m *entity.HealthChatMessage) error {
			stored = append(stored, m)

			return nil
		}).Times(2)

	var prompt []service.CompletionMessage
	fx.completion.EXPECT().Complete(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, messages []service.CompletionMessage) (string, error) {
			prompt = messages

			return "  Rest in a dark room.  ", nil
		})

	reply, err := fx.service.Chat(ctx, "patient-1", "session-1", "It still hurts")

	require.NoError(t, err)
	assert.Equal(t, "Rest in a dark room.", reply.Message.Content)
	assert.Empty(t, reply.Commands)

	require.Len(t, prompt, 4)
	assert.Equal(t, service.ChatRoleSystem, prompt[0].Role)
	assert.Contains(t, prompt[0].Content, "You are talking to a patient named Pat.")
	assert.Contains(t, prompt[0].Content, "- Name: Carol, ID: caretaker-1")
	assert.Equal(t, service.ChatRoleAssistant, prompt[2].Role)
	assert.Equal(t, service.CompletionMessage{Role: service.ChatRoleUser, Content: "It still hurts"}, prompt[3])

	require.Len(t, stored, 2)
	assert.Equal(t, entity.AssistantRoleUser, stored[0].Role)
	assert.Equal(t, entity.AssistantRoleModel, stored[1].Role)
}

func TestAssistantService_Chat_AppliesCommands(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.expectPatientTurn(ctx)
	fx.assistantRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil)

	raw := "Done. " +
		`<<<SEND_MESSAGE={"recipientId": "caretaker-1", "message": "Please call me"}>>>` +
		`<<<ADD_MEDICINE={"name":"Paracetamol","dosage":"500mg","times":["08:00","20:00"]}>>>` +
		`<<<VISUALIZE=a glass of water>>>`
	fx.completion.EXPECT().Complete(ctx, mock.Anything).Return(raw, nil)

	fx.chats.EXPECT().
		SendAutomated(ctx, "patient-1", "caretaker-1", "AI Assistant: Please call me").
		Return(&entity.ChatMessage{ID: "msg-1"}, nil)
	fx.medicines.EXPECT().
		Create(ctx, "patient-1", mock.MatchedBy(func(in *usecase.MedicineInput) bool {
			return in.Name == "Paracetamol" && len(in.Times) == 2 && in.PatientID == "patient-1"
		}), entity.MedicineSourceAICommand).
		Return(&entity.Medicine{ID: "med-9", Name: "Paracetamol"}, nil)

	fx.metrics.EXPECT().AssistantCommand("SEND_MESSAGE", true).Return()
	fx.metrics.EXPECT().AssistantCommand("ADD_MEDICINE", true).Return()
	fx.metrics.EXPECT().AssistantCommand("VISUALIZE", true).Return()

	reply, err := fx.service.Chat(ctx, "patient-1", "session-1", "Tell Carol and add my pills")

	require.NoError(t, err)
	assert.Equal(t, "Done.", reply.Message.Content)
	require.Len(t, reply.Commands, 3)
	assert.Equal(t, "msg-1", reply.Commands[0].Ref)
	assert.Equal(t, "med-9", reply.Commands[1].Ref)
	assert.Equal(t, []string{"https://image.example.com/prompt/a%20glass%20of%20water"}, reply.Images)
}

func TestAssistantService_Chat_RejectsUnknownRecipient(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.expectPatientTurn(ctx)
	fx.assistantRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil)
	fx.completion.EXPECT().Complete(ctx, mock.Anything).
		Return(`Sent. <<<SEND_MESSAGE={"recipientId": "stranger", "message": "hi"}>>>`, nil)
	fx.metrics.EXPECT().AssistantCommand("SEND_MESSAGE", false).Return()

	reply, err := fx.service.Chat(ctx, "patient-1", "session-1", "message a stranger")

	require.NoError(t, err)
	require.Len(t, reply.Commands, 1)
	assert.False(t, reply.Commands[0].Accepted)
	assert.Contains(t, reply.Commands[0].Detail, "not a connected caretaker")
}

func TestAssistantService_Chat_CaretakerCannotAddMedicine(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	session := &entity.HealthChatSession{ID: "session-2", UserID: "caretaker-1", Role: entity.RoleCaretaker}

	fx.userRepo.EXPECT().FindByID(ctx, "caretaker-1").Return(testCaretaker(), nil)
	fx.assistantRepo.EXPECT().FindSession(ctx, "session-2").Return(session, nil)
	fx.assistantRepo.EXPECT().ListMessages(ctx, "session-2", 20).Return(nil, nil)
	fx.assistantRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil)
	fx.completion.EXPECT().Complete(ctx, mock.MatchedBy(func(m []service.CompletionMessage) bool {
		return strings.Contains(m[0].Content, "(No caretakers are currently connected.)")
	})).Return(`<<<ADD_MEDICINE={"name":"A","dosage":"1","times":["08:00"]}>>>`, nil)
	fx.metrics.EXPECT().AssistantCommand("ADD_MEDICINE", false).Return()

	reply, err := fx.service.Chat(ctx, "caretaker-1", "session-2", "add a pill")

	require.NoError(t, err)
	assert.False(t, reply.Commands[0].Accepted)
}

func TestAssistantService_Chat_MalformedCommandIsNotExecuted(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.expectPatientTurn(ctx)
	fx.assistantRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil)
	fx.completion.EXPECT().Complete(ctx, mock.Anything).
		Return(`Ok <<<ADD_MEDICINE={"name":"A","dosage":"1","times":["25:00"]}>>>`, nil)
	fx.metrics.EXPECT().AssistantCommand("UNRECOGNIZED", false).Return()

	reply, err := fx.service.Chat(ctx, "patient-1", "session-1", "add it")

	require.NoError(t, err)
	assert.Equal(t, "Ok", reply.Message.Content)
	require.Len(t, reply.Commands, 1)
	assert.Equal(t, "UNRECOGNIZED", reply.Commands[0].Kind)
}

func TestAssistantService_Chat_ModelUnavailable(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.expectPatientTurn(ctx)
	fx.assistantRepo.EXPECT().AddMessage(ctx, mock.Anything).Return(nil).Once()
	fx.completion.EXPECT().Complete(ctx, mock.Anything).Return("", errors.WithStack(service.ErrModelUnavailable))

	_, err := fx.service.Chat(ctx, "patient-1", "session-1", "hello")

	assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
}

func TestAssistantService_Chat_EmptyText(t *testing.T) {
	fx := createTestAssistantService(t)

	_, err := fx.service.Chat(context.Background(), "patient-1", "session-1", "  ")

	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
}

func TestAssistantService_CreateSession_Title(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "patient-1").Return(testPatient(), nil)
	fx.assistantRepo.EXPECT().CreateSession(ctx, mock.Anything).Return(nil)

	session, err := fx.service.CreateSession(ctx, "patient-1", "What should I eat after taking my morning pills?")

	require.NoError(t, err)
	assert.Equal(t, "What should I eat after taking...", session.Title)
	assert.Equal(t, entity.RolePatient, session.Role)
	assert.Equal(t, "New Chat", sessionTitle("   "))
}

func TestAssistantService_SessionOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign session", func(t *testing.T) {
		fx := createTestAssistantService(t)
		fx.assistantRepo.EXPECT().FindSession(ctx, "session-1").Return(patientSession(), nil)

		_, err := fx.service.Messages(ctx, "caretaker-1", "session-1")
		assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})

	t.Run("missing session", func(t *testing.T) {
		fx := createTestAssistantService(t)
		fx.assistantRepo.EXPECT().FindSession(ctx, "nope").Return(nil, repository.ErrSessionNotFound)

		err := fx.service.DeleteSession(ctx, "patient-1", "nope")
		assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})

	t.Run("delete own", func(t *testing.T) {
		fx := createTestAssistantService(t)
		fx.assistantRepo.EXPECT().FindSession(ctx, "session-1").Return(patientSession(), nil)
		fx.assistantRepo.EXPECT().DeleteSession(ctx, "session-1").Return(nil)

		require.NoError(t, fx.service.DeleteSession(ctx, "patient-1", "session-1"))
	})
}
