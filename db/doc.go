// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and manages the schema.

# Drivers

Open selects a driver by type string:

	conn, err := db.Open("sqlite", "file:tracker.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses the pure-Go modernc.org/sqlite driver, so builds need no
cgo. File-backed SQLite databases get WAL mode and foreign keys
enabled; in-memory databases are pinned to a single connection so
every query sees the same database.

# Schema

CreateSchema applies the full schema idempotently (CREATE TABLE IF
NOT EXISTS). Tables:

  - entry: daily care entries, unique on (user_id, plant_id, day_key)
  - user_plant: user-owned plants

Timestamps are written by the application in UTC rather than by the
database, so both drivers store comparable values.
*/
package db
