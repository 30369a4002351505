package middleware

import (
	"log/slog"
	"time"

	"careconnect/config"
	deliverycontext "careconnect/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives the outcome of every request; the metrics registry implements it.
type RequestObserver interface {
	ObserveRequest(origin, method, route string, status int, elapsed time.Duration)
}

// LoggerMiddleware logs failed requests always and every request in debug mode.
type LoggerMiddleware struct {
	logger   *slog.Logger
	debug    bool
	observer RequestObserver
	quiet    map[string]bool
}

// NewLoggerMiddleware creates a new logger middleware. observer may be nil.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, observer RequestObserver) *LoggerMiddleware {
	quiet := map[string]bool{"/health": true}
	if cfg.Metrics.Path != "" {
		quiet[cfg.Metrics.Path] = true
	}

	return &LoggerMiddleware{
		logger:   logger,
		debug:    cfg.Env.Debug,
		observer: observer,
		quiet:    quiet,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let echo render the error now so the logged status is the real one.
			c.Error(err)
		}

		route := c.Path()
		if m.quiet[route] {
			return nil
		}

		status := c.Response().Status
		if m.observer != nil {
			origin := deliverycontext.GetOrigin(c.Request().Context())
			m.observer.ObserveRequest(string(origin), c.Request().Method, route, status, time.Since(start))
		}
		if m.debug || status >= 400 {
			m.logRequest(c, route, start, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, route string, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// The request-scoped logger already carries request_id and, once authenticated, caller_id.
	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
