// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/oykukmnGlad/ROOTEAM/catalog"
	"github.com/oykukmnGlad/ROOTEAM/models"
	"github.com/oykukmnGlad/ROOTEAM/testutil"
)

func newCatalogHandler(t *testing.T) *CatalogHandler {
	t.Helper()
	cat, err := catalog.Load("", "")
	if err != nil {
		t.Fatalf("Failed to load embedded catalog: %v", err)
	}
	return NewCatalogHandler(cat)
}

func catalogFromJSON(t *testing.T, plantsJSON, treatmentsJSON string) *CatalogHandler {
	t.Helper()

	dir := t.TempDir()
	plantsPath := filepath.Join(dir, "plants.json")
	treatmentsPath := filepath.Join(dir, "treatments.json")
	if err := os.WriteFile(plantsPath, []byte(plantsJSON), 0o644); err != nil {
		t.Fatalf("Failed to write plants dataset: %v", err)
	}
	if err := os.WriteFile(treatmentsPath, []byte(treatmentsJSON), 0o644); err != nil {
		t.Fatalf("Failed to write treatments dataset: %v", err)
	}

	cat, err := catalog.Load(plantsPath, treatmentsPath)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return NewCatalogHandler(cat)
}

func TestListReferencePlants(t *testing.T) {
	handler := newCatalogHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants", nil)
	w := httptest.NewRecorder()

	handler.ListPlants(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var plants []catalog.Plant
	testutil.AssertJSON(t, w, &plants)
	if len(plants) == 0 {
		t.Error("Expected reference plants, got none")
	}
}

func TestGetReferencePlant(t *testing.T) {
	handler := newCatalogHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants/aloe-vera", nil)
	req.SetPathValue("slug", "aloe-vera")
	w := httptest.NewRecorder()

	handler.GetPlant(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var plant catalog.Plant
	testutil.AssertJSON(t, w, &plant)
	if plant.Slug != "aloe-vera" {
		t.Errorf("Expected slug aloe-vera, got %q", plant.Slug)
	}
}

func TestUnknownSlugIs404Everywhere(t *testing.T) {
	handler := newCatalogHandler(t)

	endpoints := []struct {
		name string
		call func(http.ResponseWriter, *http.Request)
	}{
		{"plant", handler.GetPlant},
		{"care", handler.GetCare},
		{"issues", handler.GetIssues},
		{"treatment", handler.GetTreatment},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/plants/no-such-plant", nil)
			req.SetPathValue("slug", "no-such-plant")
			req.SetPathValue("issueKey", "root_rot")
			w := httptest.NewRecorder()

			ep.call(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestGetCare(t *testing.T) {
	handler := newCatalogHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants/aloe-vera/care", nil)
	req.SetPathValue("slug", "aloe-vera")
	w := httptest.NewRecorder()

	handler.GetCare(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var care map[string]any
	testutil.AssertJSON(t, w, &care)
	if _, ok := care["watering"]; !ok {
		t.Errorf("Expected watering guidance, got %v", care)
	}
}

func TestGetCare_EmptyObjectWhenAbsent(t *testing.T) {
	handler := catalogFromJSON(t,
		`[{"slug": "cali", "names": {"tr": "Çalı"}}]`,
		`{}`)

	req := testutil.MakeRequest("GET", "/api/plants/cali/care", nil)
	req.SetPathValue("slug", "cali")
	w := httptest.NewRecorder()

	handler.GetCare(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "{}\n" {
		t.Errorf("Expected empty object body, got %q", body)
	}
}

func TestGetIssues(t *testing.T) {
	handler := newCatalogHandler(t)

	// sarmasik has no declared treatmentKey; it resolves through the
	// Turkish-name-in-key fallback.
	req := testutil.MakeRequest("GET", "/api/plants/sarmasik/issues", nil)
	req.SetPathValue("slug", "sarmasik")
	w := httptest.NewRecorder()

	handler.GetIssues(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.IssuesResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TreatmentKey != "Sarmaşık (English Ivy – Hedera helix)" {
		t.Errorf("Expected resolved treatmentKey, got %q", resp.TreatmentKey)
	}
	if len(resp.Issues) == 0 {
		t.Error("Expected issue keys, got none")
	}
}

func TestGetIssues_NoTreatmentInfo(t *testing.T) {
	handler := catalogFromJSON(t,
		`[{"slug": "cali", "names": {"tr": "Çalı", "en": "Shrub"}}]`,
		`{"Orkide": {"bud_drop": "t"}}`)

	req := testutil.MakeRequest("GET", "/api/plants/cali/issues", nil)
	req.SetPathValue("slug", "cali")
	w := httptest.NewRecorder()

	handler.GetIssues(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetTreatment(t *testing.T) {
	handler := newCatalogHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants/aloe-vera/treatments/root_rot", nil)
	req.SetPathValue("slug", "aloe-vera")
	req.SetPathValue("issueKey", "root_rot")
	w := httptest.NewRecorder()

	handler.GetTreatment(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.TreatmentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PlantSlug != "aloe-vera" || resp.TreatmentKey != "Aloe Vera" || resp.IssueKey != "root_rot" {
		t.Errorf("Unexpected treatment response: %+v", resp)
	}
	if resp.Treatment == "" {
		t.Error("Expected treatment text")
	}
}

func TestGetTreatment_UnknownIssue(t *testing.T) {
	handler := newCatalogHandler(t)

	req := testutil.MakeRequest("GET", "/api/plants/aloe-vera/treatments/alien_invasion", nil)
	req.SetPathValue("slug", "aloe-vera")
	req.SetPathValue("issueKey", "alien_invasion")
	w := httptest.NewRecorder()

	handler.GetTreatment(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
