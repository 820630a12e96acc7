// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/oykukmnGlad/ROOTEAM/catalog"
	"github.com/oykukmnGlad/ROOTEAM/handlers"
	"github.com/oykukmnGlad/ROOTEAM/middleware"
	"github.com/oykukmnGlad/ROOTEAM/store"
)

// NewCatalogRouter builds the mux of the reference catalog service.
func NewCatalogRouter(cat *catalog.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	catalogHandler := handlers.NewCatalogHandler(cat)

	// Reference catalog (read-only)
	mux.HandleFunc("GET /api/plants", middleware.WithLogging(catalogHandler.ListPlants))
	mux.HandleFunc("GET /api/plants/{slug}", middleware.WithLogging(catalogHandler.GetPlant))
	mux.HandleFunc("GET /api/plants/{slug}/care", middleware.WithLogging(catalogHandler.GetCare))
	mux.HandleFunc("GET /api/plants/{slug}/issues", middleware.WithLogging(catalogHandler.GetIssues))
	mux.HandleFunc("GET /api/plants/{slug}/treatments/{issueKey}", middleware.WithLogging(catalogHandler.GetTreatment))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("FloraHeal catalog API"))
	})

	return mux
}

// NewTrackerRouter builds the mux of the tracker service. Its /api/plants
// namespace is the user-owned plant registry, not the reference catalog;
// the two services stay separately bound to keep those routes apart.
func NewTrackerRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	entryHandler := handlers.NewEntryHandler(store.NewEntryStore(db))
	plantHandler := handlers.NewPlantHandler(store.NewPlantStore(db))

	// Daily entries
	mux.HandleFunc("POST /api/entries", middleware.WithLogging(entryHandler.Upsert))
	mux.HandleFunc("GET /api/entries/{userId}", middleware.WithLogging(entryHandler.List))
	mux.HandleFunc("GET /api/entries/{userId}/today", middleware.WithLogging(entryHandler.Today))
	mux.HandleFunc("GET /api/entries/{userId}/summary", middleware.WithLogging(entryHandler.Summary))
	mux.HandleFunc("PATCH /api/entries/{id}", middleware.WithLogging(entryHandler.Patch))
	mux.HandleFunc("DELETE /api/entries/{id}", middleware.WithLogging(entryHandler.Delete))

	// User-owned plants
	mux.HandleFunc("POST /api/plants", middleware.WithLogging(plantHandler.Create))
	mux.HandleFunc("GET /api/plants", middleware.WithLogging(plantHandler.List))
	mux.HandleFunc("DELETE /api/plants/{id}", middleware.WithLogging(plantHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("FloraHeal tracker API"))
	})

	return mux
}
