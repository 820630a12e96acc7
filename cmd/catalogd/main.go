package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/oykukmnGlad/ROOTEAM/catalog"
	"github.com/oykukmnGlad/ROOTEAM/cliparse"
	"github.com/oykukmnGlad/ROOTEAM/middleware"
	"github.com/oykukmnGlad/ROOTEAM/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the reference data once; it is immutable for the process lifetime.
	cat, err := catalog.Load(cfg.PlantsFile, cfg.TreatmentsFile)
	if err != nil {
		slog.Error("failed to load reference data", "error", err)
		os.Exit(1)
	}
	slog.Info("Reference data loaded", "plants", len(cat.Plants()))

	// Create router
	mux := router.NewCatalogRouter(cat)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.CatalogPort),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "service", "catalog", "port", cfg.CatalogPort)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
