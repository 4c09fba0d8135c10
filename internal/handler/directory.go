package handler // handler package contains the alumni directory endpoints

import (
	"context"  // detached contexts for best-effort side effects
	"errors"   // sentinel comparisons
	"log"      // best-effort failures are logged, never surfaced
	"net/http" // status code constants
	"strconv"  // actor label formatting
	"time"     // human-readable search timestamps, publish timeouts

	"github.com/labstack/echo/v4"

	"github.com/MbarkyLyna/Alumni-Portal/internal/inference"
	"github.com/MbarkyLyna/Alumni-Portal/internal/queue"
	"github.com/MbarkyLyna/Alumni-Portal/internal/repository"
	queue_publisher "github.com/MbarkyLyna/Alumni-Portal/internal/service"
)

// DirectoryHandler bundles the repositories behind the public lookup and
// the admin CRUD surface.
type DirectoryHandler struct {
	Alumni   *repository.AlumniRepo
	Searches *repository.SearchRepo
}

// NewDirectoryHandler constructs a DirectoryHandler and panics if any
// dependency is nil.
func NewDirectoryHandler(alumni *repository.AlumniRepo, searches *repository.SearchRepo) *DirectoryHandler {
	if alumni == nil || searches == nil {
		panic("nil repository passed to NewDirectoryHandler")
	}
	return &DirectoryHandler{Alumni: alumni, Searches: searches}
}

// ----- DTOs -----

type profileReq struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	FamilyName string `json:"familyName"`
	Linkedin   string `json:"linkedin"`
	Facebook   string `json:"facebook"`
	// Accepted from the public connect form but not persisted anywhere yet.
	JobTitle string `json:"jobTitle"`
	Notes    string `json:"notes"`
}

type searchResp struct {
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	FamilyName *string `json:"familyName"`
	Linkedin   *string `json:"linkedin"`
	Facebook   *string `json:"facebook"`
	Time       string  `json:"time"`
}

type bulkDeleteReq struct {
	Emails []string `json:"emails"`
}

// searchTimeFormat renders the moment the lookup happened, not any stored
// creation time.  The frontend shows it verbatim.
const searchTimeFormat = "1/2/2006, 3:04:05 PM"

// Search handles GET /api/search?email= (public).  A directory hit is
// returned as-is; a miss for an esprit.tn-shaped address synthesizes a
// profile, persists it so the back office sees it, and returns it; any
// other miss is a 404.
func (h *DirectoryHandler) Search(c echo.Context) error {
	email := normalizeEmail(c.QueryParam("email"))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	ctx := c.Request().Context()

	a, err := h.Alumni.GetByEmail(ctx, email)
	if err == nil {
		h.recordSearch(ctx, email)
		return c.JSON(http.StatusOK, searchResp{
			Email:      a.Email,
			Name:       a.Name,
			FamilyName: a.FamilyName,
			Linkedin:   a.Linkedin,
			Facebook:   a.Facebook,
			Time:       time.Now().Format(searchTimeFormat),
		})
	}
	if !errors.Is(err, repository.ErrAlumniNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	// Miss: only esprit.tn addresses get a synthesized profile.
	id, ok := inference.InferIdentity(email)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	links := inference.GuessSocialLinks(email)
	guessed := &repository.Alumni{
		Email:      email,
		Name:       nullable(id.Name),
		FamilyName: nullable(id.FamilyName),
		Linkedin:   nullable(links.Linkedin),
		Facebook:   nullable(links.Facebook),
	}
	// Upsert so a repeated search becomes a permanent record; a failure
	// here still leaves the caller with a useful response.
	if err := h.Alumni.Upsert(ctx, guessed); err != nil {
		log.Printf("directory: persist guessed profile %s failed: %v", email, err)
	}
	h.recordSearch(ctx, email)

	return c.JSON(http.StatusOK, searchResp{
		Email:      guessed.Email,
		Name:       guessed.Name,
		FamilyName: guessed.FamilyName,
		Linkedin:   guessed.Linkedin,
		Facebook:   guessed.Facebook,
		Time:       time.Now().Format(searchTimeFormat),
	})
}

// Recent handles GET /api/recent (public).  A store error degrades to an
// empty feed rather than a failure.
func (h *DirectoryHandler) Recent(c echo.Context) error {
	items, err := h.Searches.ListRecent(c.Request().Context())
	if err != nil {
		log.Printf("directory: list recent searches failed: %v", err)
		return c.JSON(http.StatusOK, []repository.RecentSearch{})
	}
	if items == nil {
		items = []repository.RecentSearch{}
	}
	return c.JSON(http.StatusOK, items)
}

// List handles GET /api/alumni (admin) and returns the full directory.
func (h *DirectoryHandler) List(c echo.Context) error {
	items, err := h.Alumni.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if items == nil {
		items = []*repository.Alumni{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/alumni/:email (admin).
func (h *DirectoryHandler) Get(c echo.Context) error {
	email := emailParam(c)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	a, err := h.Alumni.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, a)
}

// Create handles POST /api/alumni (admin): insert-or-replace.  No
// inference happens on this path; what the admin sends is what is stored.
func (h *DirectoryHandler) Create(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	a := &repository.Alumni{
		Email:      email,
		Name:       nullable(req.Name),
		FamilyName: nullable(req.FamilyName),
		Linkedin:   nullable(req.Linkedin),
		Facebook:   nullable(req.Facebook),
	}
	if err := h.Alumni.Upsert(c.Request().Context(), a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	publishActivity(queue.DirectoryActivityEvent{
		Actor:  actorLabel(c),
		Action: queue.ActionUpsert,
		Email:  email,
		Count:  1,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Connect handles POST /api/connect (public): the self-service "add me"
// form.  Deliberately unauthenticated and otherwise identical to Create;
// jobTitle and notes are accepted but discarded.
func (h *DirectoryHandler) Connect(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	a := &repository.Alumni{
		Email:      email,
		Name:       nullable(req.Name),
		FamilyName: nullable(req.FamilyName),
		Linkedin:   nullable(req.Linkedin),
		Facebook:   nullable(req.Facebook),
	}
	if err := h.Alumni.Upsert(c.Request().Context(), a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	publishActivity(queue.DirectoryActivityEvent{
		Actor:  "public",
		Action: queue.ActionUpsert,
		Email:  email,
		Count:  1,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Update handles PUT /api/alumni/:email (admin).  This is a full
// overwrite: omitted fields are stored as NULL, not preserved.  Callers
// must send the complete profile.
func (h *DirectoryHandler) Update(c echo.Context) error {
	email := emailParam(c)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	err := h.Alumni.Update(c.Request().Context(), email,
		nullable(req.Name), nullable(req.FamilyName), nullable(req.Linkedin), nullable(req.Facebook))
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	publishActivity(queue.DirectoryActivityEvent{
		Actor:  actorLabel(c),
		Action: queue.ActionUpsert,
		Email:  email,
		Count:  1,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Delete handles DELETE /api/alumni/:email (admin).  The profile delete is
// authoritative; clearing that email's search-log entries afterwards is
// best effort and never fails the request.
func (h *DirectoryHandler) Delete(c echo.Context) error {
	email := emailParam(c)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	ctx := c.Request().Context()
	if err := h.Alumni.Delete(ctx, email); err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "alumni not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Searches.DeleteByEmail(ctx, email); err != nil {
		log.Printf("directory: cascade delete searches for %s failed: %v", email, err)
	}
	publishActivity(queue.DirectoryActivityEvent{
		Actor:  actorLabel(c),
		Action: queue.ActionDelete,
		Email:  email,
		Count:  1,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// BulkDelete handles POST /api/alumni/bulk-delete (admin).
func (h *DirectoryHandler) BulkDelete(c echo.Context) error {
	var req bulkDeleteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Emails) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no emails provided"})
	}
	ctx := c.Request().Context()
	deleted, err := h.Alumni.DeleteByEmails(ctx, req.Emails)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Searches.DeleteByEmails(ctx, req.Emails); err != nil {
		log.Printf("directory: bulk delete searches failed: %v", err)
	}
	publishActivity(queue.DirectoryActivityEvent{
		Actor:  actorLabel(c),
		Action: queue.ActionBulkDelete,
		Emails: req.Emails,
		Count:  deleted,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "deleted": deleted})
}

// ClearSearches handles POST /api/clear-searches (admin): unconditional
// truncate of the search log.
func (h *DirectoryHandler) ClearSearches(c echo.Context) error {
	if err := h.Searches.Clear(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// recordSearch appends to the search log.  Recording is secondary to the
// lookup itself: failures are logged and swallowed.
func (h *DirectoryHandler) recordSearch(ctx context.Context, email string) {
	if err := h.Searches.Record(ctx, email); err != nil {
		log.Printf("directory: record recent search %s failed: %v", email, err)
	}
}

// publishActivity emits a directory audit event without blocking the
// request.  The publisher logs its own failures.
func publishActivity(ev queue.DirectoryActivityEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishDirectoryActivity(ctx, ev)
	}()
}

// actorLabel names the acting admin for audit events.  The numeric id is
// enough to correlate with the admins table.
func actorLabel(c echo.Context) string {
	if id, err := adminID(c); err == nil {
		return "admin:" + strconv.FormatUint(id, 10)
	}
	return "public"
}
