package middleware

import (
	"log/slog"

	deliverycontext "careconnect/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request a correlation id and a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
	origin deliverycontext.Origin
}

// NewRequestIDMiddleware creates the middleware for the given delivery (API or worker).
func NewRequestIDMiddleware(logger *slog.Logger, origin deliverycontext.Origin) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
		origin: origin,
	}
}

// Process honours a client supplied X-Request-Id and echoes it back.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID), slog.String("origin", string(m.origin)))

		ctx := deliverycontext.WithOrigin(c.Request().Context(), m.origin)
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
