package costmodel

import (
	"math"
	"testing"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

func TestEffectiveMPGNonIncreasingWithWeight(t *testing.T) {
	s := DefaultSettings()

	prev := EffectiveMPG(s.BaseWeight, s)
	if prev != s.BaseMPG {
		t.Fatalf("at base weight expected %v, got %v", s.BaseMPG, prev)
	}

	for w := s.BaseWeight; w <= 300000; w += 5000 {
		mpg := EffectiveMPG(w, s)
		if mpg > prev {
			t.Fatalf("mpg increased with weight: %v -> %v at %v lb", prev, mpg, w)
		}
		if mpg < MinimumMPG {
			t.Fatalf("mpg %v below floor %v at %v lb", mpg, MinimumMPG, w)
		}
		prev = mpg
	}
}

func TestEffectiveMPGBelowBaseWeight(t *testing.T) {
	s := DefaultSettings()
	// No bonus for running light: the penalty only applies above base.
	if got := EffectiveMPG(15000, s); got != s.BaseMPG {
		t.Fatalf("expected base mpg %v, got %v", s.BaseMPG, got)
	}
}

func TestSuggestedNightsBoundaries(t *testing.T) {
	s := DefaultSettings()

	cases := []struct {
		miles float64
		want  int
	}{
		{-100, 0},
		{0, 0},
		{1, 0},
		{550, 0},
		{551, 1},
		{1100, 1},
		{1101, 2},
	}
	for _, c := range cases {
		if got := SuggestedNights(c.miles, s); got != c.want {
			t.Fatalf("SuggestedNights(%v) = %d, want %d", c.miles, got, c.want)
		}
	}
}

func TestCostPerMileGuardsZeroDistance(t *testing.T) {
	b := Breakdown{DistanceMiles: 0, FuelCost: 100}
	if got := b.CostPerMile(); got != 0 {
		t.Fatalf("cost per mile for zero distance = %v, want 0", got)
	}
	b.DistanceMiles = -5
	if got := b.CostPerMile(); got != 0 {
		t.Fatalf("cost per mile for negative distance = %v, want 0", got)
	}
}

func TestBuildBreakdownIsPure(t *testing.T) {
	s := DefaultSettings()
	load := LoadConfig{EmptyWeight: 32000, LoadWeight: 18000}
	route := &domain.Route{
		Origin:        "Phoenix, AZ",
		Destination:   "Dallas, TX",
		DistanceMiles: 1067,
		Tolls:         &domain.TollInfo{EstimatedCost: 12.25},
	}

	first := BuildBreakdown(route, load, s, nil)
	second := BuildBreakdown(route, load, s, nil)
	if first != second {
		t.Fatalf("identical inputs produced different breakdowns: %+v vs %+v", first, second)
	}

	sum := first.FuelCost + first.TollCost + first.OvernightCost
	if math.Abs(first.TotalCost()-sum) > 1e-9 {
		t.Fatalf("total %v != component sum %v", first.TotalCost(), sum)
	}
}

func TestBuildBreakdownNoTollData(t *testing.T) {
	route := &domain.Route{DistanceMiles: 400}
	b := BuildBreakdown(route, DefaultLoad(), DefaultSettings(), nil)
	if b.TollCost != 0 {
		t.Fatalf("toll cost without toll data = %v, want 0", b.TollCost)
	}
}

func TestNightsOverrideRoundTrip(t *testing.T) {
	s := DefaultSettings()
	load := DefaultLoad()
	route := &domain.Route{DistanceMiles: 1600}

	base := BuildBreakdown(route, load, s, nil)

	override := 7
	withOverride := BuildBreakdown(route, load, s, &override)
	if withOverride.NumberOfNights != 7 {
		t.Fatalf("override nights = %d, want 7", withOverride.NumberOfNights)
	}
	if withOverride.SuggestedNights != base.SuggestedNights {
		t.Fatalf("override changed suggestion: %d vs %d", withOverride.SuggestedNights, base.SuggestedNights)
	}

	cleared := BuildBreakdown(route, load, s, nil)
	if cleared != base {
		t.Fatalf("clearing override did not restore original breakdown: %+v vs %+v", cleared, base)
	}
}

// Cross-country reference trip: 2775 miles at base weight and default
// rates with a $156.50 toll estimate.
func TestBuildBreakdownCrossCountry(t *testing.T) {
	s := DefaultSettings()
	load := LoadConfig{EmptyWeight: 30000, LoadWeight: 0}
	route := &domain.Route{
		Origin:        "Los Angeles, CA",
		Destination:   "New York, NY",
		DistanceMiles: 2775,
		Tolls:         &domain.TollInfo{EstimatedCost: 156.50},
	}

	b := BuildBreakdown(route, load, s, nil)

	wantFuel := 2775.0 / 7.0 * 3.50 // 1387.50
	if math.Abs(b.FuelCost-wantFuel) > 0.01 {
		t.Fatalf("fuel cost = %v, want %v", b.FuelCost, wantFuel)
	}
	if b.NumberOfNights != 4 {
		t.Fatalf("nights = %d, want 4", b.NumberOfNights)
	}
	if b.OvernightCost != 600 {
		t.Fatalf("overnight cost = %v, want 600", b.OvernightCost)
	}
	if math.Abs(b.TotalCost()-2144.00) > 0.01 {
		t.Fatalf("total = %v, want 2144.00", b.TotalCost())
	}
	if math.Abs(b.CostPerMile()-0.77) > 0.005 {
		t.Fatalf("cost per mile = %v, want about 0.77", b.CostPerMile())
	}
}
