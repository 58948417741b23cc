package domain

import "github.com/paulmach/orb"

// Route is the immutable result of one successful route fetch.
// It is replaced wholesale by each new fetch, never mutated in place.
type Route struct {
	Origin        string
	Destination   string
	DistanceMiles float64

	// StatesTraversed is ordered and may be empty; neither provider
	// currently populates it.
	StatesTraversed []string

	// Tolls is nil when the provider returns no toll data. A nil value
	// means "unknown", not "free".
	Tolls *TollInfo

	// Geometry and the endpoint coordinates are display-only and
	// provider-dependent; the cost model never reads them.
	Geometry         orb.LineString
	OriginCoord      *orb.Point
	DestinationCoord *orb.Point
}

// TollInfo aggregates the provider's toll estimate for a route.
type TollInfo struct {
	EstimatedCost float64
	Segments      []TollSegment
}

type TollSegment struct {
	Name  string
	Cost  float64
	State string
}
