// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler function and logs method, path, and
duration for each request via slog:

	mux.HandleFunc("GET /api/plants", middleware.WithLogging(handler.ListPlants))

# Response Helpers

  - JSONResponse: write any value as a JSON body with a status code
  - ErrorResponse: write {"error": message} with a status code
  - ServerError: log the underlying error, respond 500 with a generic message
  - ParseJSONBody: decode a request body, returning the decode error

ServerError never echoes internal error text to the client; the detail
goes to the log only.

# CORS

CORS wraps a whole mux, allows any origin, and short-circuits OPTIONS
preflight requests. It is applied in main, not per route.
*/
package middleware
