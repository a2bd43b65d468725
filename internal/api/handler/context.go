package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/ports"
)

// requester extracts the identity injected by the Session middleware and
// fast-fails before any service call: a missing user_id means the middleware
// did not run on this route, which is a wiring bug surfaced as 401.
func requester(c echo.Context) (ports.Requester, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return ports.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	role, _ := c.Get("role").(string)
	return ports.Requester{UserID: userID, Role: role}, nil
}
