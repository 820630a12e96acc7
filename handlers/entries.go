// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/oykukmnGlad/ROOTEAM/middleware"
	"github.com/oykukmnGlad/ROOTEAM/models"
	"github.com/oykukmnGlad/ROOTEAM/store"
)

type EntryHandler struct {
	store *store.EntryStore
}

func NewEntryHandler(s *store.EntryStore) *EntryHandler {
	return &EntryHandler{store: s}
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
// Timestamps without a zone are taken as UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Upsert handles POST /api/entries
// One entry per (userId, plantId, UTC day): a second post on the same day
// overwrites the first entry's amounts instead of creating a new record.
func (h *EntryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Zero amounts are valid; only missing/null fields are rejected.
	if req.UserID == "" || req.PlantID == "" || req.WaterAmount == nil || req.FertilizerAmount == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId, plantId, waterAmount, fertilizerAmount are required")
		return
	}
	if *req.WaterAmount < 0 || *req.FertilizerAmount < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "waterAmount and fertilizerAmount must be non-negative")
		return
	}

	date := time.Now()
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid date")
			return
		}
		date = d
	}

	entry, err := h.store.Upsert(r.Context(), store.EntryUpsert{
		UserID:           req.UserID,
		PlantID:          req.PlantID,
		WaterAmount:      *req.WaterAmount,
		FertilizerAmount: *req.FertilizerAmount,
		Date:             date,
	})
	if errors.Is(err, store.ErrConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, "An entry for this plant already exists today")
		return
	}
	if err != nil {
		middleware.ServerError(w, "failed to upsert entry", err)
		return
	}

	slog.Info("entry upserted", "user_id", entry.UserID, "plant_id", entry.PlantID, "day_key", entry.DayKey)

	middleware.JSONResponse(w, http.StatusCreated, entry)
}

// List handles GET /api/entries/:userId?from&to
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var from, to *time.Time
	if s := r.URL.Query().Get("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid from date")
			return
		}
		from = &t
	}
	if s := r.URL.Query().Get("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid to date")
			return
		}
		to = &t
	}

	entries, err := h.store.List(r.Context(), userID, from, to)
	if err != nil {
		middleware.ServerError(w, "failed to list entries", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// Today handles GET /api/entries/:userId/today
// Responds with the entry for the current UTC day, or null when none exists.
func (h *EntryHandler) Today(w http.ResponseWriter, r *http.Request) {
	entry, err := h.store.Today(r.Context(), r.PathValue("userId"), time.Now())
	if err != nil {
		middleware.ServerError(w, "failed to query today's entry", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// Summary handles GET /api/entries/:userId/summary?days
func (h *EntryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days := 7
	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	daySummaries, totals, err := h.store.Summary(r.Context(), r.PathValue("userId"), days, time.Now())
	if err != nil {
		middleware.ServerError(w, "failed to aggregate entries", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		PeriodDays: days,
		Totals:     totals,
		Days:       daySummaries,
	})
}

// Patch handles PATCH /api/entries/:id
// Absent and null fields are both left unchanged; there is no way to clear
// a field through this endpoint.
func (h *EntryHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.PatchEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.WaterAmount != nil && *req.WaterAmount < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "waterAmount must be non-negative")
		return
	}
	if req.FertilizerAmount != nil && *req.FertilizerAmount < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fertilizerAmount must be non-negative")
		return
	}

	patch := store.EntryPatch{
		WaterAmount:      req.WaterAmount,
		FertilizerAmount: req.FertilizerAmount,
	}
	if req.Date != nil && *req.Date != "" {
		d, err := parseDate(*req.Date)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid date")
			return
		}
		patch.Date = &d
	}

	entry, err := h.store.Patch(r.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		middleware.ServerError(w, "failed to patch entry", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/entries/:id
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		middleware.ServerError(w, "failed to delete entry", err)
		return
	}

	slog.Info("entry deleted", "entry_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteEntryResponse{OK: true})
}
