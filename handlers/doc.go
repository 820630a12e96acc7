// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the FloraHeal API.

# Handler Types

Each handler is a struct holding its dependencies:

  - CatalogHandler: read-only reference catalog (plants, care, issues, treatments)
  - EntryHandler: daily water/fertilizer entries (upsert, list, today, summary, patch, delete)
  - PlantHandler: user-owned plant registry (create, list, delete)

Handlers are created via constructor functions:

	entryHandler := handlers.NewEntryHandler(store.NewEntryStore(db))

# Entry Upsert

POST /api/entries is an upsert keyed on (userId, plantId, UTC day):
a second POST for the same plant on the same day replaces the earlier
amounts and returns the same entry ID. The request date accepts
RFC 3339, a zoneless 2006-01-02T15:04:05, or a bare 2006-01-02.

# Patch Semantics

PATCH /api/entries/{id} updates only the fields present in the body.
A field that is absent or explicitly null is left unchanged; there is
no way to null out an amount. Changing the date does not move the
entry to a different day bucket.

# Error Responses

All errors are JSON bodies of the shape:

	{"error": "message"}

Validation failures return 400, missing rows 404, same-day conflicts
that cannot be resolved as updates 409. Unexpected failures log the
underlying error and return a generic 500.
*/
package handlers
