package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MbarkyLyna/Alumni-Portal/internal/utils"
)

const testSecret = "test-secret"

func protectedEcho(secret string) *echo.Echo {
	e := echo.New()
	g := e.Group("/api")
	g.Use(SessionAuth(secret))
	g.GET("/ping", func(c echo.Context) error {
		id, _ := c.Get("admin_id").(uint64)
		return c.JSON(http.StatusOK, echo.Map{"admin_id": id})
	})
	return e
}

func TestSessionAuthMissingCookie(t *testing.T) {
	e := protectedEcho(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestSessionAuthBadToken(t *testing.T) {
	e := protectedEcho(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthWrongSecret(t *testing.T) {
	e := protectedEcho(testSecret)

	tok, err := utils.NewSessionToken("other-secret", 1, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthValidTokenPasses(t *testing.T) {
	e := protectedEcho(testSecret)

	tok, err := utils.NewSessionToken(testSecret, 42, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin_id":42}`, rec.Body.String())
}
