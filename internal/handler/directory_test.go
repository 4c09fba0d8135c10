package handler

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MbarkyLyna/Alumni-Portal/internal/repository"
)

func newDirectoryTest(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewDirectoryHandler(repository.NewAlumniRepo(db), repository.NewSearchRepo(db))
	e := echo.New()
	e.GET("/api/search", h.Search)
	e.GET("/api/recent", h.Recent)
	e.DELETE("/api/alumni/:email", h.Delete)
	e.POST("/api/alumni/bulk-delete", h.BulkDelete)
	return e, mock
}

func alumniRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"email", "name", "family_name", "linkedin", "facebook"})
}

func TestSearchEmptyEmail(t *testing.T) {
	e, _ := newDirectoryTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email required"}`, rec.Body.String())
}

func TestSearchHitRecordsAndReturnsProfile(t *testing.T) {
	e, mock := newDirectoryTest(t)

	mock.ExpectQuery("SELECT email, name, family_name, linkedin, facebook FROM alumni WHERE email =").
		WithArgs("john.doe@esprit.tn").
		WillReturnRows(alumniRows().AddRow("john.doe@esprit.tn", "John", "Doe", nil, nil))
	mock.ExpectExec("INSERT INTO recent_searches").
		WithArgs("john.doe@esprit.tn", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	req := httptest.NewRequest(http.MethodGet, "/api/search?email=John.Doe%40esprit.tn", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"email":"john.doe@esprit.tn"`)
	assert.Contains(t, body, `"name":"John"`)
	assert.Contains(t, body, `"time":"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchMissSynthesizesEspritProfile(t *testing.T) {
	e, mock := newDirectoryTest(t)

	mock.ExpectQuery("SELECT email, name, family_name, linkedin, facebook FROM alumni WHERE email =").
		WithArgs("jane.roe@esprit.tn").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO alumni").
		WithArgs("jane.roe@esprit.tn", strPtrArg("Jane"), strPtrArg("Roe"),
			strPtrArg("https://www.linkedin.com/in/jane-roe"), strPtrArg("https://www.facebook.com/jane.roe")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO recent_searches").
		WithArgs("jane.roe@esprit.tn", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	req := httptest.NewRequest(http.MethodGet, "/api/search?email=jane.roe%40esprit.tn", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"name":"Jane"`)
	assert.Contains(t, body, `"linkedin":"https://www.linkedin.com/in/jane-roe"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchMissOutsideEsprit(t *testing.T) {
	e, mock := newDirectoryTest(t)

	mock.ExpectQuery("SELECT email, name, family_name, linkedin, facebook FROM alumni WHERE email =").
		WithArgs("jane.roe@gmail.com").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/search?email=jane.roe%40gmail.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentDegradesToEmptyFeed(t *testing.T) {
	e, mock := newDirectoryTest(t)

	mock.ExpectQuery("SELECT email, time FROM recent_searches").
		WillReturnError(errors.New("store down"))

	req := httptest.NewRequest(http.MethodGet, "/api/recent", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteMissingProfile(t *testing.T) {
	e, mock := newDirectoryTest(t)

	mock.ExpectExec("DELETE FROM alumni WHERE email =").
		WithArgs("ghost@esprit.tn").
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/alumni/ghost%40esprit.tn", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"alumni not found"}`, rec.Body.String())
}

func TestBulkDeleteRequiresEmails(t *testing.T) {
	e, _ := newDirectoryTest(t)

	rec := postJSON(e, "/api/alumni/bulk-delete", `{"emails":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"no emails provided"}`, rec.Body.String())
}

// strPtrArg matches a *string exec argument by value; sqlmock receives the
// dereferenced driver value.
func strPtrArg(want string) sqlmock.Argument { return strValueArg{want: want} }

type strValueArg struct{ want string }

func (a strValueArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && s == a.want
}
