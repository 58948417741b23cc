package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// Column order shared by both repository variants.
const savedRouteColumns = `
	id,
	origin,
	destination,
	distance_miles,
	states_traversed,
	origin_lat,
	origin_lon,
	destination_lat,
	destination_lon,
	fuel_cost,
	toll_cost,
	overnight_cost,
	total_cost,
	cost_per_mile,
	number_of_nights,
	empty_weight,
	load_weight,
	base_mpg,
	effective_mpg,
	fuel_price,
	nightly_rate,
	saved_at`

func savedRouteArgs(r *domain.SavedRoute) []any {
	return []any{
		r.ID.String(),
		r.Origin,
		r.Destination,
		r.DistanceMiles,
		strings.Join(r.StatesTraversed, ","),
		r.OriginLat,
		r.OriginLon,
		r.DestinationLat,
		r.DestinationLon,
		r.FuelCost,
		r.TollCost,
		r.OvernightCost,
		r.TotalCost,
		r.CostPerMile,
		r.NumberOfNights,
		r.EmptyWeight,
		r.LoadWeight,
		r.BaseMPG,
		r.EffectiveMPG,
		r.FuelPrice,
		r.NightlyRate,
		r.SavedAt.UTC().Format(time.RFC3339Nano),
	}
}

func scanSavedRoute(rows *sql.Rows) (*domain.SavedRoute, error) {
	var (
		r       domain.SavedRoute
		id      string
		states  string
		savedAt string
	)

	err := rows.Scan(
		&id,
		&r.Origin,
		&r.Destination,
		&r.DistanceMiles,
		&states,
		&r.OriginLat,
		&r.OriginLon,
		&r.DestinationLat,
		&r.DestinationLon,
		&r.FuelCost,
		&r.TollCost,
		&r.OvernightCost,
		&r.TotalCost,
		&r.CostPerMile,
		&r.NumberOfNights,
		&r.EmptyWeight,
		&r.LoadWeight,
		&r.BaseMPG,
		&r.EffectiveMPG,
		&r.FuelPrice,
		&r.NightlyRate,
		&savedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan saved route: %w", err)
	}

	r.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse saved route id %q: %w", id, err)
	}

	r.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, fmt.Errorf("parse saved route timestamp %q: %w", savedAt, err)
	}

	r.StatesTraversed = []string{}
	if states != "" {
		r.StatesTraversed = strings.Split(states, ",")
	}

	return &r, nil
}
