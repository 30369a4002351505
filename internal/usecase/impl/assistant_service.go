package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"careconnect/config"
	"careconnect/internal/domain/command"
	"careconnect/internal/domain/entity"
	domainerrors "careconnect/internal/domain/errors"
	"careconnect/internal/domain/repository"
	"careconnect/internal/domain/service"
	"careconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	sessionTitleRunes   = 30
	defaultSessionTitle = "New Chat"
	relayPrefix         = "AI Assistant: "
)

const baseSystemPrompt = "You are CareConnect AI, a compassionate health assistant. " +
	"Be warm, concise, and helpful. In emergencies, advise calling local emergency services.\n\n" +
	"CAPABILITIES: output commands in this EXACT format at the end of your response.\n" +
	"- Send a message to one of the patient's caretakers:\n" +
	"<<<SEND_MESSAGE={\"recipientId\": \"ID\", \"message\": \"CONTENT\"}>>>\n" +
	"- Add a medicine to the patient's schedule (24-hour HH:MM times):\n" +
	"<<<ADD_MEDICINE={\"name\": \"NAME\", \"dosage\": \"DOSAGE\", \"times\": [\"08:00\"], \"instructions\": \"TEXT\"}>>>\n" +
	"- Show an illustration:\n" +
	"<<<VISUALIZE=short description of the image>>>\n" +
	"Example: \"I will tell him. <<<SEND_MESSAGE={\"recipientId\": \"123\", \"message\": \"Help needed\"}>>>\""

type assistantService struct {
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
	assistantRepo  repository.AssistantRepository
	completion     service.ChatCompletionService
	parser         *command.Parser
	chats          usecase.ChatUsecase
	medicines      usecase.MedicineUsecase
	metrics        service.MonitorMetrics
	imageBaseURL   string
	historyLimit   int
	logger         *slog.Logger
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ConnectionRepo repository.ConnectionRepository
	AssistantRepo  repository.AssistantRepository
	Completion     service.ChatCompletionService
	Parser         *command.Parser
	Chats          usecase.ChatUsecase
	Medicines      usecase.MedicineUsecase
	Metrics        service.MonitorMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAssistantService creates the health assistant use case.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		userRepo:       params.UserRepo,
		connectionRepo: params.ConnectionRepo,
		assistantRepo:  params.AssistantRepo,
		completion:     params.Completion,
		parser:         params.Parser,
		chats:          params.Chats,
		medicines:      params.Medicines,
		metrics:        params.Metrics,
		imageBaseURL:   params.Config.LLM.ImageBaseURL,
		historyLimit:   params.Config.LLM.HistoryLimit,
		logger:         params.Logger,
	}
}

func sessionTitle(firstMessage string) string {
	text := strings.TrimSpace(firstMessage)
	if text == "" {
		return defaultSessionTitle
	}
	if utf8.RuneCountInString(text) <= sessionTitleRunes {
		return text
	}

	return string([]rune(text)[:sessionTitleRunes]) + "..."
}

func (s *assistantService) CreateSession(ctx context.Context, userID, firstMessage string) (*entity.HealthChatSession, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &entity.HealthChatSession{
		UserID:       user.ID,
		Role:         user.Role,
		Title:        sessionTitle(firstMessage),
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.assistantRepo.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return session, nil
}

func (s *assistantService) ListSessions(ctx context.Context, userID string) ([]*entity.HealthChatSession, error) {
	sessions, err := s.assistantRepo.ListSessions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

func (s *assistantService) Messages(ctx context.Context, userID, sessionID string) ([]*entity.HealthChatMessage, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	messages, err := s.assistantRepo.ListMessages(ctx, session.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list session messages")
	}

	return messages, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	if err := s.assistantRepo.DeleteSession(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (s *assistantService) ownedSession(ctx context.Context, userID, sessionID string) (*entity.HealthChatSession, error) {
	session, err := s.assistantRepo.FindSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
		}

		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return session, nil
}

// Chat stores the user's turn before calling the model, so a failed completion still keeps
// the question in the session.
func (s *assistantService) Chat(ctx context.Context, userID, sessionID, text string) (*usecase.AssistantReply, error) {
	logger := requestLogger(ctx, s.logger)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
	}

	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	history, err := s.assistantRepo.ListMessages(ctx, session.ID, s.historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session history")
	}

	var caretakers []entity.Caretaker
	if user.IsPatient() {
		relations, err := caretakersOf(ctx, s.connectionRepo, user.ID)
		if err != nil {
			return nil, err
		}
		for _, relation := range relations {
			caretakers = append(caretakers, entity.Caretaker{
				ID:        relation.CaretakerID,
				Name:      relation.CaretakerName,
				RequestID: relation.ID,
			})
		}
	}

	if err := s.assistantRepo.AddMessage(ctx, &entity.HealthChatMessage{
		SessionID: session.ID,
		Role:      entity.AssistantRoleUser,
		Type:      entity.MessageText,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	prompt := make([]service.CompletionMessage, 0, len(history)+2)
	prompt = append(prompt, service.CompletionMessage{Role: service.ChatRoleSystem, Content: systemPrompt(user, caretakers)})
	for _, turn := range history {
		role := service.ChatRoleUser
		if turn.Role == entity.AssistantRoleModel {
			role = service.ChatRoleAssistant
		}
		prompt = append(prompt, service.CompletionMessage{Role: role, Content: turn.Content})
	}
	prompt = append(prompt, service.CompletionMessage{Role: service.ChatRoleUser, Content: text})

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, service.ErrModelUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrAssistantUnavailable, err.Error())
		}

		return nil, errors.Wrap(err, "assistant completion failed")
	}

	parsed := s.parser.Parse(raw)
	reply := &usecase.AssistantReply{}
	for _, cmd := range parsed.Commands {
		outcome := s.apply(ctx, user, caretakers, cmd)
		s.metrics.AssistantCommand(outcome.Kind, outcome.Accepted)
		if !outcome.Accepted {
			logger.Warn("Assistant command rejected",
				slog.String("kind", outcome.Kind),
				slog.String("reason", outcome.Detail),
			)
		}
		if cmd.Kind() == command.KindVisualize && outcome.Accepted {
			reply.Images = append(reply.Images, outcome.Ref)
		}
		reply.Commands = append(reply.Commands, outcome)
	}

	answer := &entity.HealthChatMessage{
		SessionID: session.ID,
		Role:      entity.AssistantRoleModel,
		Type:      entity.MessageText,
		Content:   parsed.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.assistantRepo.AddMessage(ctx, answer); err != nil {
		return nil, errors.Wrap(err, "failed to store reply")
	}
	reply.Message = answer

	return reply, nil
}

func systemPrompt(user *entity.User, caretakers []entity.Caretaker) string {
	var b strings.Builder
	b.WriteString(baseSystemPrompt)
	fmt.Fprintf(&b, "\n\nYou are talking to a %s named %s.", user.Role, user.Name)

	if len(caretakers) == 0 {
		b.WriteString("\n\n(No caretakers are currently connected.)")

		return b.String()
	}

	b.WriteString("\n\nAVAILABLE CARETAKERS:\n")
	for _, c := range caretakers {
		fmt.Fprintf(&b, "- Name: %s, ID: %s\n", c.Name, c.ID)
	}

	return b.String()
}

// apply executes one command. Model output is untrusted: every command is checked against
// what the user is allowed to do before it runs.
func (s *assistantService) apply(ctx context.Context, user *entity.User, caretakers []entity.Caretaker, cmd command.Command) *usecase.CommandOutcome {
	outcome := &usecase.CommandOutcome{Kind: string(cmd.Kind())}

	switch c := cmd.(type) {
	case command.SendMessage:
		if !isCaretaker(caretakers, c.RecipientID) {
			outcome.Detail = "recipient is not a connected caretaker"

			return outcome
		}
		msg, err := s.chats.SendAutomated(ctx, user.ID, c.RecipientID, relayPrefix+c.Message)
		if err != nil {
			outcome.Detail = err.Error()

			return outcome
		}
		outcome.Accepted = true
		outcome.Ref = msg.ID
	case command.AddMedicine:
		if !user.IsPatient() {
			outcome.Detail = "medicines can only be added from a patient session"

			return outcome
		}
		medicine, err := s.medicines.Create(ctx, user.ID, &usecase.MedicineInput{
			PatientID:    user.ID,
			Name:         c.Name,
			Dosage:       c.Dosage,
			Times:        c.Times,
			Instructions: c.Instructions,
		}, entity.MedicineSourceAICommand)
		if err != nil {
			outcome.Detail = err.Error()

			return outcome
		}
		outcome.Accepted = true
		outcome.Ref = medicine.ID
		outcome.Detail = medicine.Name
	case command.Visualize:
		outcome.Accepted = true
		outcome.Ref = s.imageBaseURL + url.PathEscape(c.Prompt)
	case command.Unrecognized:
		outcome.Detail = c.Reason
	}

	return outcome
}

func isCaretaker(caretakers []entity.Caretaker, id string) bool {
	for _, c := range caretakers {
		if c.ID == id {
			return true
		}
	}

	return false
}
