package trip

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

// RouteFetcher resolves an (origin, destination) pair to exactly one
// Route. Identical concurrent requests are collapsed into a single
// provider call; the session's Fetching guard prevents a second
// distinct fetch from starting while one is in flight, so at most one
// Route is ever committed per fetch window.
type RouteFetcher struct {
	provider ports.RouteProvider
	group    singleflight.Group
}

func NewRouteFetcher(provider ports.RouteProvider) *RouteFetcher {
	return &RouteFetcher{provider: provider}
}

// Fetch blocks until the provider resolves the route or fails. Typed
// provider failures pass through untouched; there are no retries.
func (f *RouteFetcher) Fetch(ctx context.Context, origin, destination string) (*domain.Route, error) {
	if origin == "" || destination == "" {
		return nil, errors.New("fetch route: origin and destination must be non-empty")
	}

	key := origin + "\x1f" + destination
	v, err, _ := f.group.Do(key, func() (any, error) {
		return f.provider.FetchRoute(ctx, origin, destination)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Route), nil
}
