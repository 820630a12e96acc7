// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oykukmnGlad/ROOTEAM/models"
	"github.com/oykukmnGlad/ROOTEAM/store"
	"github.com/oykukmnGlad/ROOTEAM/testutil"
)

func newPlantHandler(t *testing.T) (*PlantHandler, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return NewPlantHandler(store.NewPlantStore(conn)), conn
}

func TestCreatePlant(t *testing.T) {
	handler, _ := newPlantHandler(t)

	tests := []struct {
		name       string
		body       models.CreatePlantRequest
		wantStatus int
	}{
		{
			name: "valid",
			body: models.CreatePlantRequest{
				UserID: "u1", Name: "Aloe vera",
				Species: "Aloe vera", Nickname: "Sunny",
				Location: "Bedroom window", Notes: "Likes bright indirect light",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "name only",
			body:       models.CreatePlantRequest{UserID: "u1", Name: "Monstera"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing userId",
			body:       models.CreatePlantRequest{Name: "Aloe vera"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       models.CreatePlantRequest{UserID: "u1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "whitespace-only name",
			body:       models.CreatePlantRequest{UserID: "u1", Name: "   "},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/plants", tt.body)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestCreatePlant_ReturnsRecord(t *testing.T) {
	handler, _ := newPlantHandler(t)

	req := testutil.MakeRequest("POST", "/api/plants", models.CreatePlantRequest{
		UserID: "u1", Name: "  Aloe vera  ", Nickname: "Sunny",
	})
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var plant models.UserPlant
	testutil.AssertJSON(t, w, &plant)
	if plant.ID == "" {
		t.Error("Expected a generated id")
	}
	if plant.Name != "Aloe vera" {
		t.Errorf("Expected trimmed name, got %q", plant.Name)
	}
	if plant.Nickname == nil || *plant.Nickname != "Sunny" {
		t.Errorf("Expected nickname Sunny, got %v", plant.Nickname)
	}
	if plant.Species != nil {
		t.Errorf("Expected absent species, got %v", *plant.Species)
	}
	if plant.CreatedAt.IsZero() {
		t.Error("Expected createdAt to be set")
	}
}

func TestListPlants_RequiresUserID(t *testing.T) {
	handler, _ := newPlantHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListPlants(t *testing.T) {
	handler, conn := newPlantHandler(t)

	testutil.CreateTestPlant(t, conn, "u1", "Aloe")
	testutil.CreateTestPlant(t, conn, "u1", "Orkide")
	testutil.CreateTestPlant(t, conn, "other", "Kaktüs")

	req := testutil.MakeRequest("GET", "/api/plants?userId=u1", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var plants []models.UserPlant
	testutil.AssertJSON(t, w, &plants)
	if len(plants) != 2 {
		t.Fatalf("Expected 2 plants, got %d", len(plants))
	}
}

func TestListPlants_EmptyArray(t *testing.T) {
	handler, _ := newPlantHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants?userId=nobody", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty array body, got %q", body)
	}
}

func TestDeletePlant_AlwaysSucceeds(t *testing.T) {
	handler, conn := newPlantHandler(t)

	id := testutil.CreateTestPlant(t, conn, "u1", "Aloe")

	// Existing and unknown ids both answer 200; this endpoint is
	// idempotent, unlike entry deletion.
	for _, target := range []string{id, id, "never-existed"} {
		req := testutil.MakeRequest("DELETE", "/api/plants/"+target, nil)
		req.SetPathValue("id", target)
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.DeletePlantResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != "Plant deleted" {
			t.Errorf("Expected deletion message, got %q", resp.Message)
		}
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM user_plant").Scan(&count); err != nil {
		t.Fatalf("Failed to count plants: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected plant to be removed, found %d rows", count)
	}
}
