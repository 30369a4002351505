package handler

import (
	"log/slog"
	"net/http"
	"time"

	"careconnect/internal/delivery/http/response"
	"careconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	SnapshotUC  usecase.SnapshotUsecase
	Logger      *slog.Logger
}

// AssistantHandler serves the health assistant and on-demand risk analysis.
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	snapshotUC  usecase.SnapshotUsecase
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: params.AssistantUC,
		snapshotUC:  params.SnapshotUC,
		logger:      params.Logger,
	}
}

// AssistantMessageBody carries one user turn
type AssistantMessageBody struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// CreateSessionBody opens a session, optionally titled by its first message
type CreateSessionBody struct {
	Message string `json:"message" validate:"max=4000"`
}

// CreateSession opens a new assistant session
func (h *AssistantHandler) CreateSession(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req CreateSessionBody
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.assistantUC.CreateSession(c.Request().Context(), userID, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// ListSessions returns the caller's sessions, most recent first
func (h *AssistantHandler) ListSessions(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	sessions, err := h.assistantUC.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, sessions)
}

// Messages returns one session's history
func (h *AssistantHandler) Messages(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	messages, err := h.assistantUC.Messages(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, messages)
}

// DeleteSession removes a session and its messages
func (h *AssistantHandler) DeleteSession(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	if err := h.assistantUC.DeleteSession(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Session deleted"))
}

// Chat sends a turn to the assistant and runs any commands it returns
func (h *AssistantHandler) Chat(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req AssistantMessageBody
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	reply, err := h.assistantUC.Chat(c.Request().Context(), userID, c.Param("id"), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply)
}

// Analyze grades a patient's recent activity on demand
func (h *AssistantHandler) Analyze(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	assessment, err := h.snapshotUC.Assess(c.Request().Context(), userID, c.Param("patientId"), time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assessment)
}
