package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"careconnect/internal/delivery/http/response"
	"careconnect/internal/domain/entity"
	"careconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	UserUC       usecase.UserUsecase
	Logger       *slog.Logger
}

// ConnectionHandler serves connection requests and safe zones.
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	userUC       usecase.UserUsecase
	logger       *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler
func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		userUC:       params.UserUC,
		logger:       params.Logger,
	}
}

// SendRequestBody is the body of POST /connections
type SendRequestBody struct {
	PatientEmail string `json:"patient_email" validate:"required,email"`
}

// RespondBody is the body of POST /connections/:id/respond
type RespondBody struct {
	Status entity.RequestStatus `json:"status" validate:"required,oneof=accepted rejected"`
}

// SendRequest lets a caretaker ask a patient to connect
func (h *ConnectionHandler) SendRequest(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req SendRequestBody
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	created, err := h.connectionUC.SendRequest(c.Request().Context(), userID, req.PatientEmail)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// List returns the requests sent to a patient, or sent by a caretaker
func (h *ConnectionHandler) List(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.userUC.GetProfile(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var requests []*entity.ConnectionRequest
	if user.Role == entity.RolePatient {
		requests, err = h.connectionUC.ListForPatient(ctx, userID)
	} else {
		requests, err = h.connectionUC.ListForCaretaker(ctx, userID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, requests)
}

// Respond accepts or rejects a pending request
func (h *ConnectionHandler) Respond(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req RespondBody
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.connectionUC.Respond(c.Request().Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// SetSafeZone places or moves the relation's safe zone
func (h *ConnectionHandler) SetSafeZone(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req usecase.SafeZoneInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	zone, err := h.connectionUC.SetSafeZone(c.Request().Context(), userID, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// ClearSafeZone deactivates the relation's safe zone
func (h *ConnectionHandler) ClearSafeZone(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	if err := h.connectionUC.ClearSafeZone(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Safe zone cleared"))
}

// SafeZoneGeoJSON returns the zone as a GeoJSON feature for map clients
func (h *ConnectionHandler) SafeZoneGeoJSON(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	feature, err := h.connectionUC.SafeZoneGeoJSON(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := json.Marshal(feature)
	if err != nil {
		return errors.Wrap(err, "failed to encode safe zone")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// InviteQRCode renders the caretaker's invite as a PNG
func (h *ConnectionHandler) InviteQRCode(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	png, err := h.connectionUC.InviteQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Caretakers lists the caretakers connected to the calling patient
func (h *ConnectionHandler) Caretakers(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	caretakers, err := h.connectionUC.ConnectedCaretakers(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, caretakers)
}

// Patients lists the accepted relations of the calling caretaker
func (h *ConnectionHandler) Patients(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	patients, err := h.connectionUC.ConnectedPatients(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, patients)
}
