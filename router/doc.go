// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers for the two FloraHeal
services.

# Two Routers

The catalog service and the tracker service both own a /api/plants
namespace with different meanings: reference plants on one side,
user-owned plants on the other. They are built as separate muxes and
bound to separate ports so the routes never collide.

	catalogMux := router.NewCatalogRouter(cat)
	trackerMux := router.NewTrackerRouter(db)

# Routing

Routes use Go 1.22+ method-based patterns with path parameters:

	mux.HandleFunc("GET /api/plants/{slug}/treatments/{issueKey}", ...)

Handlers read parameters with r.PathValue. Every route is wrapped in
middleware.WithLogging; CORS is applied once at the server level in
main, around the whole mux.

# Root Endpoints

Each service answers GET / with a short plain-text liveness string
identifying which of the two it is.
*/
package router
