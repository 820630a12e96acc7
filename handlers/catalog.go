// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/oykukmnGlad/ROOTEAM/catalog"
	"github.com/oykukmnGlad/ROOTEAM/middleware"
	"github.com/oykukmnGlad/ROOTEAM/models"
)

// CatalogHandler serves the read-only plant-care reference API. All of its
// endpoints are pure lookups into the catalog loaded at startup.
type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// ListPlants handles GET /api/plants
func (h *CatalogHandler) ListPlants(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.cat.Plants())
}

// GetPlant handles GET /api/plants/:slug
func (h *CatalogHandler) GetPlant(w http.ResponseWriter, r *http.Request) {
	plant, ok := h.cat.PlantBySlug(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Plant not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, plant)
}

// GetCare handles GET /api/plants/:slug/care
func (h *CatalogHandler) GetCare(w http.ResponseWriter, r *http.Request) {
	plant, ok := h.cat.PlantBySlug(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Plant not found")
		return
	}

	care := plant.Care
	if care == nil {
		care = map[string]any{}
	}
	middleware.JSONResponse(w, http.StatusOK, care)
}

// GetIssues handles GET /api/plants/:slug/issues
// Returns the issue keys a frontend can offer as a checklist for this plant.
func (h *CatalogHandler) GetIssues(w http.ResponseWriter, r *http.Request) {
	plant, ok := h.cat.PlantBySlug(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Plant not found")
		return
	}

	key, ok := h.cat.ResolveTreatmentKey(plant)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No treatment information found for this plant")
		return
	}

	issues, _ := h.cat.Issues(key)
	middleware.JSONResponse(w, http.StatusOK, models.IssuesResponse{
		TreatmentKey: key,
		Issues:       issues,
	})
}

// GetTreatment handles GET /api/plants/:slug/treatments/:issueKey
func (h *CatalogHandler) GetTreatment(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	issueKey := r.PathValue("issueKey")

	plant, ok := h.cat.PlantBySlug(slug)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Plant not found")
		return
	}

	key, ok := h.cat.ResolveTreatmentKey(plant)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No treatment information found for this plant")
		return
	}

	text, ok := h.cat.Treatment(key, issueKey)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No treatment found for this issue")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TreatmentResponse{
		PlantSlug:    slug,
		TreatmentKey: key,
		IssueKey:     issueKey,
		Treatment:    text,
	})
}
