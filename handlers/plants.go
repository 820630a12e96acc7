// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/oykukmnGlad/ROOTEAM/middleware"
	"github.com/oykukmnGlad/ROOTEAM/models"
	"github.com/oykukmnGlad/ROOTEAM/store"
)

type PlantHandler struct {
	store *store.PlantStore
}

func NewPlantHandler(s *store.PlantStore) *PlantHandler {
	return &PlantHandler{store: s}
}

// Create handles POST /api/plants
func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" || strings.TrimSpace(req.Name) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId and name are required fields")
		return
	}

	plant, err := h.store.Create(r.Context(), store.PlantCreate{
		UserID:   req.UserID,
		Name:     req.Name,
		Species:  req.Species,
		Nickname: req.Nickname,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		middleware.ServerError(w, "failed to create plant", err)
		return
	}

	slog.Info("plant created", "plant_id", plant.ID, "user_id", plant.UserID)

	middleware.JSONResponse(w, http.StatusCreated, plant)
}

// List handles GET /api/plants?userId=
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId query param is required")
		return
	}

	plants, err := h.store.List(r.Context(), userID)
	if err != nil {
		middleware.ServerError(w, "failed to list plants", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, plants)
}

// Delete handles DELETE /api/plants/:id
// Idempotent: deleting an unknown id still succeeds.
func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.Delete(r.Context(), id); err != nil {
		middleware.ServerError(w, "failed to delete plant", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeletePlantResponse{Message: "Plant deleted"})
}
