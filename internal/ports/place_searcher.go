package ports

import (
	"context"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// Contract for free-text place completion.
type PlaceSearcher interface {
	// Autocomplete returns ranked suggestions for a partial query.
	// Callers treat any error as "no suggestions right now".
	Autocomplete(ctx context.Context, query string) ([]domain.Suggestion, error)
}
