package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "careconnect/internal/delivery/context"
	"careconnect/internal/delivery/http/response"
	"careconnect/internal/domain/constants"
	"careconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix    = "Bearer "
	tokenQueryParam = "token"
	contextIdentity = "identity"
)

// AuthMiddleware verifies bearer tokens and stores the caller on the echo context.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate requires a valid token in the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == authHeader || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		return m.verify(c, next, token)
	}
}

// AuthenticateQuery accepts the token as a query parameter. Browsers cannot set headers on
// websocket upgrades, so only /ws uses it.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam(tokenQueryParam)
		if token == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "token query parameter is missing")
		}

		return m.verify(c, next, token)
	}
}

func (m *AuthMiddleware) verify(c echo.Context, next echo.HandlerFunc, token string) error {
	ctx := c.Request().Context()

	identity, err := m.verifier.VerifyToken(ctx, token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	c.Set(constants.ContextUserID, identity.UserID)
	c.Set(constants.ContextEmail, identity.Email)
	c.Set(constants.ContextRoles, identity.Roles)
	c.Set(contextIdentity, identity)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithCaller(ctx, identity.UserID)))

	return next(c)
}

// GetUserID returns the uid set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(constants.ContextUserID).(string)

	return userID, ok && userID != ""
}

// GetIdentity returns the verified identity set by Authenticate.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(contextIdentity).(*service.Identity)

	return identity, ok && identity != nil
}
