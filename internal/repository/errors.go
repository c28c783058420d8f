// Package repository implements data access over the agency MySQL schema.
// This file defines sentinel errors shared across repositories so that
// handlers can map failure scenarios onto HTTP status codes without
// inspecting driver error strings themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when a write cannot proceed because of dependent
// records, such as deleting a client that still has boletos on file.
// Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrForeignKey is returned when an insert references a cliente or
// aerolinea that does not exist. The store enforces the constraint; the
// repository only names the failure.
var ErrForeignKey = errors.New("unknown foreign key reference")

// MySQL error codes worth distinguishing. The driver formats them into the
// error string ("Error 1062: Duplicate entry ..."), so matching on the code
// substring is enough without importing driver internals.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}

func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	// 1452: cannot add child row, 1451: cannot delete parent row
	return strings.Contains(err.Error(), "1452") || strings.Contains(err.Error(), "1451")
}
