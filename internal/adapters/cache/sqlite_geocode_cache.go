// Package cache provides the persistent lookup caches backing the
// route providers.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// SQLite-backed cache for address -> coordinate lookups. Keys are
// expected to be consistent (e.g., already normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Get returns the cached coordinate for an address, reporting a miss
// without error.
func (s *SqliteGeocodeCache) Get(ctx context.Context, address string) (orb.Point, bool, error) {
	if s.DB == nil {
		return orb.Point{}, false, errors.New("geocode cache: db is nil")
	}
	if address == "" {
		return orb.Point{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT lon, lat
	FROM geocode_cache
	WHERE address = ?;
	`

	var lon, lat float64
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return orb.Point{}, false, nil
	}
	if err != nil {
		return orb.Point{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return orb.Point{lon, lat}, true, nil
}

// Put stores one resolved coordinate, replacing any previous entry.
func (s *SqliteGeocodeCache) Put(ctx context.Context, address string, pt orb.Point) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (address, lon, lat)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, address, pt.Lon(), pt.Lat()); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}
	return nil
}
