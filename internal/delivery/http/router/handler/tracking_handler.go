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

const defaultHistoryLimit = 200

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler ingests patient positions and serves them to caretakers.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// ReportLocation stores the calling patient's position and runs the geofence monitor
func (h *TrackingHandler) ReportLocation(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req usecase.LocationReport
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if req.Source == "" {
		req.Source = "app"
	}

	result, err := h.trackingUC.ReportLocation(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetLocation returns a patient's latest state
func (h *TrackingHandler) GetLocation(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	tracking, err := h.trackingUC.GetLocation(c.Request().Context(), userID, c.Param("patientId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tracking)
}

// History returns a patient's trail, filtered by ?since= and ?limit=
func (h *TrackingHandler) History(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	since := querySince(c, time.Now())
	points, err := h.trackingUC.History(c.Request().Context(), userID, c.Param("patientId"), since, queryInt(c, "limit", defaultHistoryLimit))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, points)
}
