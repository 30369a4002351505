// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"careconnect/internal/delivery/http/middleware"
	"careconnect/internal/delivery/http/response"
	"careconnect/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// message is the body of responses that carry no resource.
func message(text string) map[string]string {
	return map[string]string{"message": text}
}

// callerID returns the authenticated uid. When it is missing the 401 has been written and
// the returned error is the write result.
func callerID(c echo.Context) (string, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// bindAndValidate decodes the body into req and runs its validate tags. On failure the 400
// has been written and the returned error is the write result.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.Fields(err))
	}

	return true, nil
}

// queryInt reads an integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return v
}

// querySince reads an RFC 3339 "since" parameter. A missing or malformed value means the last day.
func querySince(c echo.Context, now time.Time) time.Time {
	if raw := c.QueryParam("since"); raw != "" {
		if since, err := time.Parse(time.RFC3339, raw); err == nil {
			return since
		}
	}

	return now.Add(-24 * time.Hour)
}
