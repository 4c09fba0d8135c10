package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/MbarkyLyna/Alumni-Portal/internal/utils"
)

// Admin mirrors the 'admins' table.
type Admin struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// Create hashes the password and inserts an admin, returning its ID.
func (r *AdminRepo) Create(ctx context.Context, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (email, password_hash) VALUES (?,?)",
		email, hash)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an admin by normalized email.  ErrAdminNotFound when
// no such account exists.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash FROM admins WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Admin{}, ErrAdminNotFound
	}
	return a, err
}

// GetByID fetches an admin by id.  ErrAdminNotFound when no such account
// exists.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (Admin, error) {
	var a Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash FROM admins WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Admin{}, ErrAdminNotFound
	}
	return a, err
}

// List returns all admin accounts ordered by email.  Password hashes are
// scanned but never serialized (json:"-").
func (r *AdminRepo) List(ctx context.Context) ([]Admin, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email,password_hash FROM admins ORDER BY email")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Admin
	for rows.Next() {
		var a Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update changes an admin's email and, when password is non-empty, rehashes
// and replaces the stored hash.  It returns ErrAdminNotFound when no row
// with the given id exists and ErrEmailExists on a unique-key violation.
func (r *AdminRepo) Update(ctx context.Context, id uint64, email, password string, cost int) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var (
		res sql.Result
		err error
	)
	if strings.TrimSpace(password) != "" {
		var hash string
		hash, err = utils.HashPassword(password, cost)
		if err != nil {
			return err
		}
		res, err = r.DB.ExecContext(ctx,
			"UPDATE admins SET email=?, password_hash=? WHERE id=?",
			email, hash, id)
	} else {
		res, err = r.DB.ExecContext(ctx,
			"UPDATE admins SET email=? WHERE id=?",
			email, id)
	}
	if err != nil {
		if isDuplicateKey(err) {
			return ErrEmailExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Delete removes an admin by id.  ErrAdminNotFound when nothing was deleted.
func (r *AdminRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM admins WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAdminNotFound
	}
	return nil
}
