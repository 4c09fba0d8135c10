package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/MbarkyLyna/Alumni-Portal/internal/utils" // session token parsing
)

// SessionCookieName is the cookie carrying the signed session token.  The
// login handler sets it, the logout handler expires it, and this
// middleware reads it.
const SessionCookieName = "session"

// SessionAuth returns an Echo middleware that validates the session cookie
// and injects the authenticated admin id into the request context under
// "admin_id".  The provided secret must match the one used when issuing
// tokens at login.  Protected routes fail with 401 before any handler or
// store access runs.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			adminID, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			// Handlers and downstream middleware read the id via c.Get.
			c.Set("admin_id", adminID)
			return next(c)
		}
	}
}
