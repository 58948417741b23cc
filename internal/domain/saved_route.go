package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedRoute is a frozen snapshot of a trip session's inputs and
// outputs at the moment of saving. It is created once per explicit
// save action and never updated in place.
type SavedRoute struct {
	ID uuid.UUID

	Origin          string
	Destination     string
	DistanceMiles   float64
	StatesTraversed []string

	OriginLat      float64
	OriginLon      float64
	DestinationLat float64
	DestinationLon float64

	FuelCost       float64
	TollCost       float64
	OvernightCost  float64
	TotalCost      float64
	CostPerMile    float64
	NumberOfNights int

	EmptyWeight  float64
	LoadWeight   float64
	BaseMPG      float64
	EffectiveMPG float64
	FuelPrice    float64
	NightlyRate  float64

	SavedAt time.Time
}
