package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func sampleRoute(savedAt time.Time) *domain.SavedRoute {
	return &domain.SavedRoute{
		ID:              uuid.New(),
		Origin:          "Phoenix, AZ",
		Destination:     "Dallas, TX",
		DistanceMiles:   1066.9876543210123,
		StatesTraversed: []string{},
		OriginLat:       33.4484,
		OriginLon:       -112.07403981267,
		DestinationLat:  32.7767,
		DestinationLon:  -96.797,
		FuelCost:        533.50,
		TollCost:        12.25,
		OvernightCost:   150,
		TotalCost:       695.75,
		CostPerMile:     0.65,
		NumberOfNights:  1,
		EmptyWeight:     30000,
		LoadWeight:      14000,
		BaseMPG:         7.0,
		EffectiveMPG:    6.58,
		FuelPrice:       3.50,
		NightlyRate:     150,
		SavedAt:         savedAt,
	}
}

func TestSaveAndListRecency(t *testing.T) {
	repo := NewSqliteTripRepository(openTestDB(t))
	ctx := context.Background()

	older := sampleRoute(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	newer := sampleRoute(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("save older: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("save newer: %v", err)
	}

	routes, err := repo.ListRecent(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("listed %d routes, want 2", len(routes))
	}
	if routes[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %s", routes[0].ID)
	}

	got := routes[0]
	if got.Origin != newer.Origin || got.TotalCost != newer.TotalCost {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	// Full float64 precision must survive storage.
	if got.OriginLon != newer.OriginLon || got.DistanceMiles != newer.DistanceMiles {
		t.Fatalf("float precision lost: %+v", got)
	}
	if !got.SavedAt.Equal(newer.SavedAt) {
		t.Fatalf("saved_at = %v, want %v", got.SavedAt, newer.SavedAt)
	}
	if got.StatesTraversed == nil || len(got.StatesTraversed) != 0 {
		t.Fatalf("states = %#v, want empty slice", got.StatesTraversed)
	}
}

func TestDeleteByID(t *testing.T) {
	repo := NewSqliteTripRepository(openTestDB(t))
	ctx := context.Background()

	r := sampleRoute(time.Now().UTC())
	if err := repo.Save(ctx, r); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	routes, err := repo.ListRecent(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(routes) != 0 {
		t.Fatalf("expected empty history, got %d", len(routes))
	}

	if err := repo.Delete(ctx, r.ID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
