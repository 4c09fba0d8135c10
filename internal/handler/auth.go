package handler

import (
	"context" // provides context with cancellation for DB calls
	"errors"  // sentinel comparisons
	"net/http" // HTTP status codes and primitives
	"strings" // string manipulation utilities
	"time"    // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/MbarkyLyna/Alumni-Portal/internal/config"     // app configuration
	"github.com/MbarkyLyna/Alumni-Portal/internal/middleware" // session cookie name
	"github.com/MbarkyLyna/Alumni-Portal/internal/repository" // DB repositories
	"github.com/MbarkyLyna/Alumni-Portal/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResp struct {
	LoggedIn bool   `json:"loggedIn"`
	Email    string `json:"email,omitempty"`
}

// Login: verify credentials and establish a session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.SessionSecret, a.ID, h.Cfg.SessionTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	c.SetCookie(sessionCookie(tok.Token, tok.Exp))

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Logout: destroy the session cookie.  Idempotent by construction; there is
// no server-side state to tear down.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(sessionCookie("", time.Unix(0, 0).UTC()))
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Me: report whether the caller holds a live session.  This endpoint never
// fails: any problem with the cookie, the token, or the account row simply
// reads as logged out.
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, meResp{LoggedIn: false})
	}
	id, err := utils.ParseSessionToken(h.Cfg.SessionSecret, cookie.Value)
	if err != nil {
		return c.JSON(http.StatusOK, meResp{LoggedIn: false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		// Deleted account or store trouble both read as logged out.
		return c.JSON(http.StatusOK, meResp{LoggedIn: false})
	}
	return c.JSON(http.StatusOK, meResp{LoggedIn: true, Email: a.Email})
}

// sessionCookie builds the HttpOnly session cookie.  An empty token with an
// epoch expiry clears it.
func sessionCookie(token string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
