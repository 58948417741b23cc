package ports

import (
	"context"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// Contract for resolving two address strings to a single driving route.
type RouteProvider interface {
	// FetchRoute resolves origin and destination text and returns the
	// route between them. Failures are typed: LocationNotFoundError,
	// ErrNoRouteFound, APIError, StatusError, or ErrMalformedResponse.
	FetchRoute(ctx context.Context, origin, destination string) (*domain.Route, error)
}
