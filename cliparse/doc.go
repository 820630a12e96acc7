// Copyright (c) 2026 ROOTEAM.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first, if present.

# CLI Flags

	-catalog-port  Catalog service port
	-tracker-port  Tracker service port
	-d             Database URL (tracker only)
	-t             Database type: sqlite or postgres
	-plants        Path to a plants dataset (default: embedded)
	-treatments    Path to a treatments dataset (default: embedded)

# Environment Variables

Flags fall back to environment variables:

	CATALOG_PORT     → -catalog-port (default 3000)
	TRACKER_PORT     → -tracker-port (default 4000)
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t (default sqlite)
	PLANTS_FILE      → -plants
	TREATMENTS_FILE  → -treatments

CLI flags take precedence over environment variables.

# Validation

ParseFlags rejects unknown database types. The database URL is only
required by the tracker service, so it is checked separately:

	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal(err)
	}
*/
package cliparse
