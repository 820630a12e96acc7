// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the persistence layer for daily care entries
and user-owned plants.

# Stores

Each store is a struct wrapping *sql.DB, created via a constructor:

	entries := store.NewEntryStore(db)
	plants := store.NewPlantStore(db)

All methods take a context.Context and return explicit errors. Two
sentinel errors cross the package boundary:

  - ErrNotFound: the row does not exist
  - ErrConflict: a uniqueness constraint was violated

Handlers map these to 404 and 409 responses.

# Day Keys

Every entry carries a day key, the UTC calendar date of its timestamp
formatted as YYYY-MM-DD. The (user, plant, day key) triple is unique:
logging the same plant twice in one UTC day replaces the earlier
amounts in place via ON CONFLICT DO UPDATE, preserving the row's ID
and creation time.

Timestamps are normalized to UTC before they are written, so date
range comparisons and day key derivation agree across drivers.

# Placeholders

Queries use $n placeholders. PostgreSQL reads them natively; SQLite
treats them as named parameters bound positionally.
*/
package store
