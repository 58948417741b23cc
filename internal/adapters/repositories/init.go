package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the saved-route and geocode-cache tables. The SQL
// is kept portable so the same statements run against SQLite (server)
// and Postgres (dbtool).
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// DOUBLE PRECISION keeps float64 values intact on the Postgres
	// path (REAL is float4 there); SQLite treats it as REAL affinity.
	createSavedRoutesQuery := `
	CREATE TABLE IF NOT EXISTS saved_routes (
		id TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_miles DOUBLE PRECISION NOT NULL,
		states_traversed TEXT NOT NULL,
		origin_lat DOUBLE PRECISION NOT NULL,
		origin_lon DOUBLE PRECISION NOT NULL,
		destination_lat DOUBLE PRECISION NOT NULL,
		destination_lon DOUBLE PRECISION NOT NULL,
		fuel_cost DOUBLE PRECISION NOT NULL,
		toll_cost DOUBLE PRECISION NOT NULL,
		overnight_cost DOUBLE PRECISION NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		cost_per_mile DOUBLE PRECISION NOT NULL,
		number_of_nights INTEGER NOT NULL,
		empty_weight DOUBLE PRECISION NOT NULL,
		load_weight DOUBLE PRECISION NOT NULL,
		base_mpg DOUBLE PRECISION NOT NULL,
		effective_mpg DOUBLE PRECISION NOT NULL,
		fuel_price DOUBLE PRECISION NOT NULL,
		nightly_rate DOUBLE PRECISION NOT NULL,
		saved_at TEXT NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_saved_routes_saved_at
	ON saved_routes(saved_at);
	`

	statements := []string{
		createSavedRoutesQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
