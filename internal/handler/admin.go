package handler

import (
	"errors"   // sentinel comparisons
	"net/http" // status codes
	"strings"  // input trimming

	"github.com/labstack/echo/v4"

	"github.com/MbarkyLyna/Alumni-Portal/internal/config"
	"github.com/MbarkyLyna/Alumni-Portal/internal/repository"
)

// AdminAccountHandler manages the admin accounts themselves.  Every route
// here sits behind the session middleware; any admin may manage any other,
// including deleting themselves.
type AdminAccountHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAdminAccountHandler(cfg config.Config, a *repository.AdminRepo) *AdminAccountHandler {
	return &AdminAccountHandler{Cfg: cfg, Admins: a}
}

// ----- DTOs -----

type adminAddReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminUpdateReq struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` // blank keeps the current password
}

type adminDeleteReq struct {
	ID uint64 `json:"id"`
}

// List handles GET /api/admins: all accounts, hashes excluded by the
// struct tags.
func (h *AdminAccountHandler) List(c echo.Context) error {
	items, err := h.Admins.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if items == nil {
		items = []repository.Admin{}
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /api/add-admin.
func (h *AdminAccountHandler) Add(c echo.Context) error {
	var req adminAddReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}
	_, err := h.Admins.Create(c.Request().Context(), req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Update handles POST /api/update-admin.  A blank password leaves the
// stored hash alone.
func (h *AdminAccountHandler) Update(c echo.Context) error {
	var req adminUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.ID == 0 || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and email required"})
	}
	err := h.Admins.Update(c.Request().Context(), req.ID, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAdminNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin with this email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Delete handles POST /api/delete-admin.  Nothing stops the last admin
// from deleting itself; recovery is a manual insert.
func (h *AdminAccountHandler) Delete(c echo.Context) error {
	var req adminDeleteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	err := h.Admins.Delete(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
