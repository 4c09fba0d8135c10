package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// RecentSearch mirrors a row of the append-only 'recent_searches' log.  The
// time column stores RFC3339 text rather than a DATETIME; the feed returns
// it verbatim.
type RecentSearch struct {
	Email string `json:"email"`
	Time  string `json:"time"`
}

// recentLimit caps the feed at the last 20 entries.
const recentLimit = 20

type SearchRepo struct{ DB *sql.DB }

func NewSearchRepo(db *sql.DB) *SearchRepo { return &SearchRepo{DB: db} }

// Record appends one entry for the given email, stamped with the current
// UTC time.  Rows are never updated afterwards.
func (r *SearchRepo) Record(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO recent_searches (email, time) VALUES (?,?)",
		email, time.Now().UTC().Format(time.RFC3339))
	return err
}

// ListRecent returns the newest entries first, at most recentLimit of them.
// Ordering by id is equivalent to ordering by insertion time and avoids
// parsing the stored strings.
func (r *SearchRepo) ListRecent(ctx context.Context) ([]RecentSearch, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT email, time FROM recent_searches ORDER BY id DESC LIMIT ?", recentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentSearch
	for rows.Next() {
		var s RecentSearch
		if err := rows.Scan(&s.Email, &s.Time); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByEmail removes all log entries recorded for one email.  Used as a
// best-effort cascade after a profile delete.
func (r *SearchRepo) DeleteByEmail(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx, "DELETE FROM recent_searches WHERE email=?", email)
	return err
}

// DeleteByEmails removes log entries for every email in the set.
func (r *SearchRepo) DeleteByEmails(ctx context.Context, emails []string) error {
	if len(emails) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(emails))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(emails))
	for i, e := range emails {
		args[i] = strings.ToLower(strings.TrimSpace(e))
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM recent_searches WHERE email IN ("+placeholders+")", args...)
	return err
}

// Clear truncates the whole search log.
func (r *SearchRepo) Clear(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM recent_searches")
	return err
}
