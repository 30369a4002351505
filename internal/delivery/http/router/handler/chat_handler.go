package handler

import (
	"log/slog"
	"net/http"

	"careconnect/internal/delivery/http/response"
	"careconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler serves the patient and caretaker conversation.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// Send posts a message to a connected peer
func (h *ChatHandler) Send(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req usecase.ChatInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	msg, err := h.chatUC.Send(c.Request().Context(), userID, c.Param("peerId"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}

// List returns the conversation, oldest message first
func (h *ChatHandler) List(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	messages, err := h.chatUC.List(c.Request().Context(), userID, c.Param("peerId"), queryInt(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, messages)
}

// Clear deletes every message of the conversation
func (h *ChatHandler) Clear(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	removed, err := h.chatUC.Clear(c.Request().Context(), userID, c.Param("peerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"removed": removed})
}

// Unread reports whether the peer wrote last
func (h *ChatHandler) Unread(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	unread, err := h.chatUC.HasUnread(c.Request().Context(), userID, c.Param("peerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"unread": unread})
}
