// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver error strings themselves. For example,
// ErrEmailExists signals a unique-key violation on the admins table,
// which handlers translate into a specific 400 response rather than a
// generic database error.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when inserting or updating an admin would
// duplicate an existing email. Handlers should translate this into an
// HTTP 400 response with a descriptive message.
var ErrEmailExists = errors.New("email already exists")

// ErrAlumniNotFound is returned when an alumni profile cannot be found
// for a given email key. Handlers should translate this into HTTP 404.
var ErrAlumniNotFound = errors.New("alumni not found")

// ErrAdminNotFound is returned when an admin account cannot be found by
// id or email. Repositories map driver-level misses to this sentinel so
// handlers never compare against sql.ErrNoRows directly.
var ErrAdminNotFound = errors.New("admin not found")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error code 1062). The driver does not expose a typed error for this
// without importing its internals, so the code is matched in the message.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
