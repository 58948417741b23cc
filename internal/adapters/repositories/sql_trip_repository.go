package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

// Postgres implementation of the TripRepository port, used by the
// dbtool path.
type SQLTripRepository struct{ DB *sql.DB }

func NewSQLTripRepository(db *sql.DB) *SQLTripRepository {
	return &SQLTripRepository{DB: db}
}

func (s *SQLTripRepository) Save(ctx context.Context, r *domain.SavedRoute) error {
	if s.DB == nil {
		return errors.New("sql trip repository: DB is nil")
	}
	if r == nil {
		return errors.New("save route: record is nil")
	}

	query := `
	INSERT INTO saved_routes (` + savedRouteColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
	        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	ON CONFLICT (id) DO NOTHING;
	`

	if _, err := s.DB.ExecContext(ctx, query, savedRouteArgs(r)...); err != nil {
		return fmt.Errorf("save route id=%s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLTripRepository) ListRecent(ctx context.Context) ([]*domain.SavedRoute, error) {
	if s.DB == nil {
		return nil, errors.New("sql trip repository: DB is nil")
	}

	query := `
	SELECT ` + savedRouteColumns + `
	FROM saved_routes
	ORDER BY saved_at DESC;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query saved_routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.SavedRoute, 0, 16)
	for rows.Next() {
		r, err := scanSavedRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func (s *SQLTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DB == nil {
		return errors.New("sql trip repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM saved_routes WHERE id = $1;`, id.String())
	if err != nil {
		return fmt.Errorf("delete route id=%s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete route id=%s: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
