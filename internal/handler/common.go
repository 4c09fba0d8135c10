package handler // handler defines http handlers

import (
	"errors"   // errors provides sentinel values used in adminID
	"net/url"  // url decodes percent-encoded path parameters
	"strconv"  // strconv converts strings to numeric types
	"strings"  // strings provides trimming and case helpers

	"github.com/labstack/echo/v4" // echo defines request context types
)

// adminID extracts the authenticated admin id placed in context by the
// session middleware and converts it to uint64.
func adminID(c echo.Context) (uint64, error) {
	v := c.Get("admin_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid admin_id in context")
}

// emailParam returns the :email path parameter normalized to lowercase.
// Percent-encoding is undone first since an email may arrive escaped.
func emailParam(c echo.Context) string {
	raw := c.Param("email")
	if dec, err := url.PathUnescape(raw); err == nil {
		raw = dec
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// normalizeEmail lowercases and trims an email from a query string or
// request body.  Emails are stored lowercase so lookups are case-blind.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// nullable maps an empty (post-trim) string to nil so absent fields are
// stored as NULL rather than empty text.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
