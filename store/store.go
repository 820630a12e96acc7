// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a record addressed by id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when the database reports a unique-key
	// violation that the atomic upsert did not absorb.
	ErrConflict = errors.New("duplicate record for unique key")
)

// DayKey returns the UTC calendar date of t as "YYYY-MM-DD". This is the
// granularity at which the one-entry-per-day invariant is enforced.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// isUniqueViolation reports whether err is a unique-constraint error from
// either supported driver (sqlite or postgres).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// nullable maps an optional, trimmed string to its stored form. Empty
// strings are stored as NULL so they round-trip as absent fields.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
