package handler

import (
	"net/http" // status codes
	"strings"  // trims the incoming message

	"github.com/labstack/echo/v4"

	"github.com/MbarkyLyna/Alumni-Portal/internal/chat"
)

// ChatHandler fronts the assistant service.
type ChatHandler struct {
	Svc *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler { return &ChatHandler{Svc: svc} }

type chatReq struct {
	Message string `json:"message"`
}

// Ask handles POST /api/chat (public).  The service never returns an
// error: provider trouble degrades to canned replies inside it, so this
// endpoint only fails on a bad request body.
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message required"})
	}
	reply := h.Svc.Reply(c.Request().Context(), msg)
	return c.JSON(http.StatusOK, echo.Map{"response": reply})
}
