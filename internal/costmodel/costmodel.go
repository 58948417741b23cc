// Package costmodel holds the pure trip-cost math: the weight to
// fuel-efficiency curve, fuel and lodging costs, and the composed cost
// breakdown. Nothing here performs I/O or holds mutable state, so every
// function is safe to call concurrently and repeatedly.
package costmodel

import (
	"math"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// Default rate constants for a typical class-8 diesel tractor.
const (
	DefaultBaseMPG            = 7.0
	DefaultBaseWeight         = 30000.0 // pounds
	DefaultMPGPenaltyPerPound = 0.00003
	DefaultFuelPrice          = 3.50 // per gallon
	DefaultMilesPerDay        = 550.0
	DefaultNightlyRate        = 150.0

	// MinimumMPG is a hard floor preventing non-physical efficiency
	// under extreme weight input.
	MinimumMPG = 4.0

	// Federal gross weight limit and a sanity floor for the tractor
	// itself. Enforced at the API boundary, not here.
	MaxLegalWeight = 80000.0
	MinTruckWeight = 10000.0
)

// Settings are the configurable vehicle/rate profile. All fields are
// expected to be positive.
type Settings struct {
	BaseMPG            float64
	BaseWeight         float64
	MPGPenaltyPerPound float64
	FuelPricePerGallon float64
	MilesPerDay        float64
	NightlyRate        float64
}

func DefaultSettings() Settings {
	return Settings{
		BaseMPG:            DefaultBaseMPG,
		BaseWeight:         DefaultBaseWeight,
		MPGPenaltyPerPound: DefaultMPGPenaltyPerPound,
		FuelPricePerGallon: DefaultFuelPrice,
		MilesPerDay:        DefaultMilesPerDay,
		NightlyRate:        DefaultNightlyRate,
	}
}

// LoadConfig is the truck and cargo weight input, in pounds.
type LoadConfig struct {
	EmptyWeight float64
	LoadWeight  float64
}

func (l LoadConfig) TotalWeight() float64 {
	return l.EmptyWeight + l.LoadWeight
}

func DefaultLoad() LoadConfig {
	return LoadConfig{EmptyWeight: DefaultBaseWeight, LoadWeight: 0}
}

// Breakdown is the derived cost result for one route. It is recomputed
// from scratch on every input change, never patched.
type Breakdown struct {
	DistanceMiles   float64
	FuelCost        float64
	TollCost        float64
	OvernightCost   float64
	NumberOfNights  int
	SuggestedNights int
	EffectiveMPG    float64
}

func (b Breakdown) TotalCost() float64 {
	return b.FuelCost + b.TollCost + b.OvernightCost
}

// CostPerMile returns 0 for non-positive distance rather than dividing
// by zero; that is a guard, not an error path.
func (b Breakdown) CostPerMile() float64 {
	if b.DistanceMiles <= 0 {
		return 0
	}
	return b.TotalCost() / b.DistanceMiles
}

// EffectiveMPG adjusts base fuel efficiency downward for weight carried
// beyond the baseline, clamped at MinimumMPG.
func EffectiveMPG(totalWeight float64, s Settings) float64 {
	overBase := math.Max(0, totalWeight-s.BaseWeight)
	mpg := s.BaseMPG - overBase*s.MPGPenaltyPerPound
	return math.Max(MinimumMPG, mpg)
}

// FuelCost prices the gallons needed for the distance at the effective
// MPG. Negative distance is a contract violation of the upstream Route
// and is not guarded here.
func FuelCost(distanceMiles, totalWeight float64, s Settings) float64 {
	gallons := distanceMiles / EffectiveMPG(totalWeight, s)
	return gallons * s.FuelPricePerGallon
}

// SuggestedNights derives overnight stops from distance under the
// fixed miles-per-day assumption (an hours-of-service proxy). The
// first day's driving needs no preceding stop, hence the minus one;
// the ceiling models that any partial day still requires a full stop
// before it if more driving remains.
func SuggestedNights(distanceMiles float64, s Settings) int {
	if distanceMiles <= 0 {
		return 0
	}
	days := int(math.Ceil(distanceMiles / s.MilesPerDay))
	if days < 1 {
		return 0
	}
	return days - 1
}

func OvernightCost(nights int, s Settings) float64 {
	return float64(nights) * s.NightlyRate
}

// BuildBreakdown composes the full cost breakdown for a fetched route.
// It is the single authoritative recomputation entry point: every
// state change in the trip session routes through it. When
// nightsOverride is non-nil it supersedes the suggested value.
func BuildBreakdown(route *domain.Route, load LoadConfig, s Settings, nightsOverride *int) Breakdown {
	suggested := SuggestedNights(route.DistanceMiles, s)

	nights := suggested
	if nightsOverride != nil {
		nights = *nightsOverride
	}

	var tollCost float64
	if route.Tolls != nil {
		tollCost = route.Tolls.EstimatedCost
	}

	return Breakdown{
		DistanceMiles:   route.DistanceMiles,
		FuelCost:        FuelCost(route.DistanceMiles, load.TotalWeight(), s),
		TollCost:        tollCost,
		OvernightCost:   OvernightCost(nights, s),
		NumberOfNights:  nights,
		SuggestedNights: suggested,
		EffectiveMPG:    EffectiveMPG(load.TotalWeight(), s),
	}
}
