// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. databaseType is "sqlite" or
// "postgres"; url is a file path (or ":memory:") for sqlite and a
// connection string for postgres.
func Open(databaseType, url string) (*sql.DB, error) {
	switch databaseType {
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		// Each sqlite connection to ":memory:" is its own database, so the
		// pool must be capped at a single connection.
		if url == ":memory:" {
			conn.SetMaxOpenConns(1)
		}
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting WAL mode: %w", err)
		}
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
		return conn, nil

	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("opening postgres database: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}
}
