package handler

import (
	"io"       // drains the uploaded part into memory
	"log"      // per-row persistence failures are logged, not surfaced
	"net/http" // status codes

	"github.com/labstack/echo/v4"

	"github.com/MbarkyLyna/Alumni-Portal/internal/importer"
	"github.com/MbarkyLyna/Alumni-Portal/internal/queue"
	"github.com/MbarkyLyna/Alumni-Portal/internal/repository"
)

// UploadHandler ingests bulk alumni files from the admin console.
type UploadHandler struct {
	Alumni   *repository.AlumniRepo
	Searches *repository.SearchRepo
}

func NewUploadHandler(alumni *repository.AlumniRepo, searches *repository.SearchRepo) *UploadHandler {
	return &UploadHandler{Alumni: alumni, Searches: searches}
}

// BulkUpload handles POST /api/bulk-upload (admin): multipart form with a
// "file" part of comma-separated lines.  Each parsed row is upserted
// independently; a row that fails to persist is logged and skipped so one
// bad row never aborts the batch.  The response echoes back every parsed
// row, persisted or not, so the console can render what was imported.
func (h *UploadHandler) BulkUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read file failed"})
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read file failed"})
	}

	rows := importer.ParseLines(string(raw))
	ctx := c.Request().Context()
	for _, row := range rows {
		a := &repository.Alumni{
			Email:      row.Email,
			Name:       nullable(row.Name),
			FamilyName: nullable(row.FamilyName),
			Linkedin:   nullable(row.Linkedin),
			Facebook:   nullable(row.Facebook),
		}
		if err := h.Alumni.Upsert(ctx, a); err != nil {
			log.Printf("upload: upsert %s failed: %v", row.Email, err)
			continue
		}
		if err := h.Searches.Record(ctx, row.Email); err != nil {
			log.Printf("upload: record search %s failed: %v", row.Email, err)
		}
	}
	if len(rows) > 0 {
		publishActivity(queue.DirectoryActivityEvent{
			Actor:  actorLabel(c),
			Action: queue.ActionBulkImport,
			Count:  int64(len(rows)),
		})
	}
	if rows == nil {
		rows = []importer.Row{}
	}
	return c.JSON(http.StatusOK, echo.Map{"results": rows})
}
