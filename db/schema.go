// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the tracker service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Daily water/fertilizer entries. The unique index on
-- (user_id, plant_id, day_key) carries the one-entry-per-day invariant;
-- the upsert endpoint relies on it for its atomic conflict target.
CREATE TABLE IF NOT EXISTS entry (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    plant_id TEXT NOT NULL,
    water_amount REAL NOT NULL CHECK (water_amount >= 0),
    fertilizer_amount REAL NOT NULL CHECK (fertilizer_amount >= 0),
    date TIMESTAMP NOT NULL,
    day_key TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, plant_id, day_key)
);

CREATE INDEX IF NOT EXISTS idx_entry_user_date ON entry(user_id, date);
CREATE INDEX IF NOT EXISTS idx_entry_user_day ON entry(user_id, day_key);

-- User-owned plants ("My Plants"). No foreign key from entry.plant_id;
-- entries reference plants by free-form string.
CREATE TABLE IF NOT EXISTS user_plant (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    species TEXT,
    nickname TEXT,
    location TEXT,
    notes TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_user_plant_user ON user_plant(user_id);
`
