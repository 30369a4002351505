// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"careconnect/config"
	"careconnect/internal/delivery/http/middleware"
	"careconnect/internal/delivery/http/router/handler"
	"careconnect/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	Config            *config.Config
	Metrics           *metrics.Registry
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handler.UserHandler
	DeviceHandler     *handler.DeviceHandler
	ConnectionHandler *handler.ConnectionHandler
	TrackingHandler   *handler.TrackingHandler
	AlertHandler      *handler.AlertHandler
	MedicineHandler   *handler.MedicineHandler
	ChatHandler       *handler.ChatHandler
	AssistantHandler  *handler.AssistantHandler
	RealtimeHandler   *handler.RealtimeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	auth := p.AuthMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	if p.Config.Metrics.Enabled {
		path := p.Config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		e.GET(path, echo.WrapHandler(p.Metrics.Handler()))
	}

	// browsers cannot send headers on the upgrade request
	e.GET("/ws", p.RealtimeHandler.Connect, p.AuthMiddleware.AuthenticateQuery)

	v1 := e.Group("/api/v1", auth)

	users := v1.Group("/users")
	{
		users.POST("/me", p.UserHandler.Register)
		users.GET("/me", p.UserHandler.GetProfile)
	}

	devices := v1.Group("/devices")
	{
		devices.POST("", p.DeviceHandler.RegisterDevice)
		devices.GET("", p.DeviceHandler.GetUserDevices)
		devices.PUT("/:id/token", p.DeviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", p.DeviceHandler.DeactivateDevice)
	}

	connections := v1.Group("/connections")
	{
		connections.POST("", p.ConnectionHandler.SendRequest)
		connections.GET("", p.ConnectionHandler.List)
		connections.GET("/invite.png", p.ConnectionHandler.InviteQRCode)
		connections.GET("/caretakers", p.ConnectionHandler.Caretakers)
		connections.GET("/patients", p.ConnectionHandler.Patients)
		connections.POST("/:id/respond", p.ConnectionHandler.Respond)
		connections.PUT("/:id/zone", p.ConnectionHandler.SetSafeZone)
		connections.DELETE("/:id/zone", p.ConnectionHandler.ClearSafeZone)
		connections.GET("/:id/zone.geojson", p.ConnectionHandler.SafeZoneGeoJSON)
	}

	tracking := v1.Group("/tracking")
	{
		tracking.POST("/location", p.TrackingHandler.ReportLocation)
		tracking.GET("/:patientId", p.TrackingHandler.GetLocation)
		tracking.GET("/:patientId/history", p.TrackingHandler.History)
	}

	alerts := v1.Group("/alerts")
	{
		alerts.GET("", p.AlertHandler.List)
		alerts.GET("/unread", p.AlertHandler.UnreadCount)
		alerts.POST("/:id/read", p.AlertHandler.MarkRead)
		alerts.DELETE("/:id", p.AlertHandler.Dismiss)
		alerts.GET("/:id/snapshot", p.AlertHandler.Snapshot)
	}

	medicines := v1.Group("/medicines")
	{
		medicines.POST("", p.MedicineHandler.Create)
		medicines.GET("", p.MedicineHandler.List)
		medicines.GET("/today", p.MedicineHandler.Today)
		medicines.GET("/plan", p.MedicineHandler.Plan)
		medicines.PUT("/:id", p.MedicineHandler.Update)
		medicines.DELETE("/:id", p.MedicineHandler.Delete)
		medicines.POST("/:id/deactivate", p.MedicineHandler.Deactivate)
		medicines.POST("/:id/taken", p.MedicineHandler.MarkTaken)
	}

	chats := v1.Group("/chats/:peerId")
	{
		chats.POST("/messages", p.ChatHandler.Send)
		chats.GET("/messages", p.ChatHandler.List)
		chats.DELETE("", p.ChatHandler.Clear)
		chats.GET("/unread", p.ChatHandler.Unread)
	}

	assistant := v1.Group("/assistant")
	{
		assistant.POST("/sessions", p.AssistantHandler.CreateSession)
		assistant.GET("/sessions", p.AssistantHandler.ListSessions)
		assistant.GET("/sessions/:id/messages", p.AssistantHandler.Messages)
		assistant.DELETE("/sessions/:id", p.AssistantHandler.DeleteSession)
		assistant.POST("/sessions/:id/chat", p.AssistantHandler.Chat)
		assistant.GET("/analyze/:patientId", p.AssistantHandler.Analyze)
	}
}
