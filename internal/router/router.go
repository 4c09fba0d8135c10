package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/MbarkyLyna/Alumni-Portal/internal/handler"    // import the handlers that implement business logic
	"github.com/MbarkyLyna/Alumni-Portal/internal/middleware" // import middleware for session auth, rate limiting and caching
)

// RegisterRoutes registers routes that do not require authentication and
// carry no throttling.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints.  Login and logout issue and
// clear the session cookie; /auth/me reports session state and never fails.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/auth")
	// Verify credentials and set the HttpOnly session cookie.
	g.POST("/login", a.Login)
	// Clear the cookie.  Idempotent; no server-side state exists.
	g.POST("/logout", a.Logout)
	// Report whether the caller holds a live session.
	g.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated lookup surface.  These are
// the routes the public frontend talks to; the abuse-prone ones (search
// writes inferred rows, chat bills a provider, connect writes rows) sit
// behind the Redis token bucket, and the recent-searches feed sits behind
// the short-TTL response cache.
func RegisterPublic(e *echo.Echo, d *handler.DirectoryHandler, ch *handler.ChatHandler, limit, cache echo.MiddlewareFunc) {
	// Look up a profile by email, synthesizing one for esprit.tn addresses.
	e.GET("/api/search", d.Search, limit)
	// The last 20 searched emails, newest first.  Tolerates a few seconds of
	// staleness, so responses are served from Redis when possible.
	e.GET("/api/recent", d.Recent, cache)
	// Ask the assistant a question.
	e.POST("/api/chat", ch.Ask, limit)
	// Self-service "add me to the directory" form.
	e.POST("/api/connect", d.Connect, limit)
}

// RegisterAdmin registers the back-office surface.  Every route in this
// group requires a valid session cookie; the middleware places the admin id
// in the request context for handlers and audit events.
func RegisterAdmin(e *echo.Echo, sessionSecret string, d *handler.DirectoryHandler, u *handler.UploadHandler, adm *handler.AdminAccountHandler) {
	g := e.Group("/api")
	// Apply the session middleware to everything registered on this group.
	g.Use(middleware.SessionAuth(sessionSecret))

	// Full directory listing for the console table view.
	g.GET("/alumni", d.List)
	// Single profile by email.
	g.GET("/alumni/:email", d.Get)
	// Insert or replace a profile exactly as sent; no inference on this path.
	g.POST("/alumni", d.Create)
	// Full overwrite of a profile; omitted fields become NULL.
	g.PUT("/alumni/:email", d.Update)
	// Remove a profile and its search-log entries.
	g.DELETE("/alumni/:email", d.Delete)
	// Remove several profiles in one statement.
	g.POST("/alumni/bulk-delete", d.BulkDelete)
	// Bulk import from an uploaded comma-separated file.
	g.POST("/bulk-upload", u.BulkUpload)
	// Truncate the recent-searches log.
	g.POST("/clear-searches", d.ClearSearches)

	// Admin account management.  Any admin may manage any other.  The verb
	// prefixes are a quirk the frontend depends on.
	g.GET("/admins", adm.List)
	g.POST("/add-admin", adm.Add)
	g.POST("/update-admin", adm.Update)
	g.POST("/delete-admin", adm.Delete)
}
