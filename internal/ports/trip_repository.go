package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// Port: a boundary for persisting frozen trip snapshots. Records are
// immutable once written; there is no update-in-place.
type TripRepository interface {
	Save(ctx context.Context, r *domain.SavedRoute) error
	// ListRecent returns saved routes newest first.
	ListRecent(ctx context.Context) ([]*domain.SavedRoute, error)
	// Delete removes one record; ErrNotFound when the id is unknown.
	Delete(ctx context.Context, id uuid.UUID) error
}
