// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oykukmnGlad/ROOTEAM/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The database is closed when the test completes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}

// CreateTestEntry inserts a daily entry directly and returns its ID.
// The day key is derived from date the same way the store derives it.
func CreateTestEntry(t *testing.T, conn *sql.DB, userID, plantID string, water, fert float64, date time.Time) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO entry (id, user_id, plant_id, water_amount, fertilizer_amount, date, day_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, userID, plantID, water, fert, date.UTC(), date.UTC().Format("2006-01-02"), now, now)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return id
}

// CreateTestPlant inserts a user plant directly and returns its ID.
func CreateTestPlant(t *testing.T, conn *sql.DB, userID, name string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO user_plant (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, userID, name, now, now)
	if err != nil {
		t.Fatalf("Failed to create test plant: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		return req
	}
	return httptest.NewRequest(method, path, nil)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
