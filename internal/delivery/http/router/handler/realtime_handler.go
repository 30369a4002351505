package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"careconnect/config"
	"careconnect/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Config *config.Config
	Logger *slog.Logger
}

// RealtimeHandler upgrades /ws requests and hands the connection to the hub.
type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	allowed := params.Config.HTTP.AllowOrigins

	return &RealtimeHandler{
		hub: params.Hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 || slices.Contains(allowed, "*") {
					return true
				}

				return slices.Contains(allowed, r.Header.Get("Origin"))
			},
		},
		logger: params.Logger,
	}
}

// Connect serves one client until it disconnects
func (h *RealtimeHandler) Connect(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	h.hub.Serve(conn, userID)

	return nil
}
