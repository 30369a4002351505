package handler

import (
	"log/slog"
	"net/http"

	"careconnect/internal/delivery/http/response"
	"careconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultAlertLimit = 50

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves a caretaker's alert feed.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// List returns the newest alerts first
func (h *AlertHandler) List(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	alerts, err := h.alertUC.List(c.Request().Context(), userID, queryInt(c, "limit", defaultAlertLimit))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, alerts)
}

// UnreadCount returns the number of unread alerts
func (h *AlertHandler) UnreadCount(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	count, err := h.alertUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count})
}

// MarkRead flags one alert as read
func (h *AlertHandler) MarkRead(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	if err := h.alertUC.MarkRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Alert marked as read"))
}

// Dismiss deletes one alert
func (h *AlertHandler) Dismiss(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	if err := h.alertUC.Dismiss(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Alert dismissed"))
}

// Snapshot streams the stored snapshot of an automated alert
func (h *AlertHandler) Snapshot(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	body, contentType, err := h.alertUC.Snapshot(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contentType, body)
}
