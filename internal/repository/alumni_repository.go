// This file defines the Alumni model and repository methods for the
// directory. An Alumni row is keyed by lowercase email; all other columns
// are nullable because rows can be created from partial information (a
// public "connect" submission, a sparse bulk-upload line, or a profile
// synthesized from an email pattern).
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
	"strings"      // strings provides normalization helpers
)

// Alumni represents a directory profile persisted in the database.  The
// email column is the primary key and is always stored lowercase.  The
// remaining fields are pointers so that absent values round-trip as JSON
// null rather than empty strings.
type Alumni struct {
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	FamilyName *string `json:"familyName"`
	Linkedin   *string `json:"linkedin"`
	Facebook   *string `json:"facebook"`
}

// AlumniRepo encapsulates all database queries related to alumni profiles.
type AlumniRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewAlumniRepo constructs an AlumniRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewAlumniRepo(db *sql.DB) *AlumniRepo {
	return &AlumniRepo{db: db}
}

// Upsert inserts the profile or fully replaces an existing row with the
// same email.  Replace means replace: prior column values are overwritten
// with whatever the caller supplies, nil included.  The email is
// normalized to lowercase before the write.
func (r *AlumniRepo) Upsert(ctx context.Context, a *Alumni) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	const q = `INSERT INTO alumni (email, name, family_name, linkedin, facebook)
	           VALUES (?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	               name = VALUES(name),
	               family_name = VALUES(family_name),
	               linkedin = VALUES(linkedin),
	               facebook = VALUES(facebook)`
	_, err := r.db.ExecContext(ctx, q, a.Email, a.Name, a.FamilyName, a.Linkedin, a.Facebook)
	return err
}

// GetByEmail fetches a profile by its exact (lowercased) email key.  It
// returns ErrAlumniNotFound if no row is found.
func (r *AlumniRepo) GetByEmail(ctx context.Context, email string) (*Alumni, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = "SELECT email, name, family_name, linkedin, facebook FROM alumni WHERE email = ?"
	var a Alumni
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&a.Email, &a.Name, &a.FamilyName, &a.Linkedin, &a.Facebook); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlumniNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every profile ordered alphabetically by email.
func (r *AlumniRepo) ListAll(ctx context.Context) ([]*Alumni, error) {
	const q = `SELECT email, name, family_name, linkedin, facebook
	           FROM alumni ORDER BY email ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Alumni
	for rows.Next() {
		a := new(Alumni)
		if err := rows.Scan(&a.Email, &a.Name, &a.FamilyName, &a.Linkedin, &a.Facebook); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the four mutable columns of an existing row.  Callers
// pass nil for any field they want cleared; this is a full overwrite, not a
// merge.  It returns ErrAlumniNotFound when no row with the email exists.
func (r *AlumniRepo) Update(ctx context.Context, email string, name, familyName, linkedin, facebook *string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `UPDATE alumni
	           SET name = ?, family_name = ?, linkedin = ?, facebook = ?
	           WHERE email = ?`
	res, err := r.db.ExecContext(ctx, q, name, familyName, linkedin, facebook, email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// Delete removes a profile by email.  ErrAlumniNotFound when nothing
// matched.
func (r *AlumniRepo) Delete(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.db.ExecContext(ctx, "DELETE FROM alumni WHERE email = ?", email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// DeleteByEmails removes every profile whose email is in the given set and
// returns the number of rows removed.  The caller is responsible for
// rejecting an empty set before reaching this method.
func (r *AlumniRepo) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}
	placeholders := strings.Repeat("?,", len(emails))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(emails))
	for i, e := range emails {
		args[i] = strings.ToLower(strings.TrimSpace(e))
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM alumni WHERE email IN ("+placeholders+")", args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
