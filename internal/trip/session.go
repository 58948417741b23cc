// Package trip holds the stateful core of the route cost estimator:
// the trip session aggregate plus the place-search and route-fetch
// coordinators it drives.
package trip

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trent-alex/trucking-ROL/internal/costmodel"
	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

// State is the session lifecycle: Idle until the first successful
// fetch, Fetching while one is in flight, then Ready or Failed.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrMissingAddress  = errors.New("origin and destination are required")
	ErrFetchInProgress = errors.New("route calculation already in progress")
	ErrNoRoute         = errors.New("no route has been calculated yet")
)

// Session is the single source of truth for one trip-planning
// interaction: current input, settings, the last fetched route, the
// nights override, and the derived cost breakdown. The breakdown is
// recomputed inside every mutating call that can affect it, so a
// caller reading state after a mutation returns never observes a stale
// combination. All mutations are serialized by the internal mutex; the
// design still assumes one logical owner (one UI, one user).
type Session struct {
	search  *PlaceSearch
	fetcher *RouteFetcher

	mu sync.Mutex

	origin      string
	destination string
	suggestions [2][]domain.Suggestion

	load     costmodel.LoadConfig
	settings costmodel.Settings

	// fuelPriceEdited blocks a late feed price from clobbering a user
	// edit; user edits always win.
	fuelPriceEdited   bool
	usingDefaultPrice bool

	route          *domain.Route
	breakdown      costmodel.Breakdown
	nightsOverride *int

	// fetchEpoch invalidates in-flight fetches: Reset bumps it, and a
	// fetch started under an older epoch discards its result.
	fetchEpoch uint64

	state    State
	errorMsg string
}

// NewSession wires a session against a route provider and a place
// searcher, using the standard 300 ms search debounce.
func NewSession(provider ports.RouteProvider, searcher ports.PlaceSearcher) *Session {
	return NewSessionDebounce(provider, searcher, defaultDebounce)
}

// NewSessionDebounce is NewSession with a caller-chosen debounce
// interval; tests shrink it.
func NewSessionDebounce(provider ports.RouteProvider, searcher ports.PlaceSearcher, debounce time.Duration) *Session {
	s := &Session{
		fetcher:           NewRouteFetcher(provider),
		load:              costmodel.DefaultLoad(),
		settings:          costmodel.DefaultSettings(),
		usingDefaultPrice: true,
		state:             StateIdle,
	}
	s.search = NewPlaceSearch(searcher, debounce, s.applySuggestions)
	return s
}

// applySuggestions is the delivery callback for the search
// coordinator. The generation re-check under the session lock closes
// the window between the coordinator's own check and the write here.
func (s *Session) applySuggestions(field Field, gen uint64, suggestions []domain.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.search.Generation(field) != gen {
		return
	}
	s.suggestions[field] = suggestions
}

// EditInput updates one address field and schedules a debounced
// suggestion lookup. Allowed in any state; it does not change the
// session lifecycle state.
func (s *Session) EditInput(field Field, text string) {
	s.mu.Lock()
	if field == FieldOrigin {
		s.origin = text
	} else {
		s.destination = text
	}
	s.mu.Unlock()

	s.search.QueryChanged(field, text)
}

// Select commits a suggestion as the field's final value and clears
// that field's suggestion list synchronously. Any pending lookup for
// the field is invalidated so it cannot repopulate the list later.
func (s *Session) Select(field Field, suggestion domain.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search.Invalidate(field)
	if field == FieldOrigin {
		s.origin = suggestion.DisplayText
	} else {
		s.destination = suggestion.DisplayText
	}
	s.suggestions[field] = nil
}

// CanCalculate reports whether both address fields are non-empty.
func (s *Session) CanCalculate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.origin != "" && s.destination != ""
}

// Calculate resolves the current origin/destination to a route and
// rebuilds the cost breakdown. It rejects re-entry while a fetch is in
// flight. On failure the previous route and breakdown, if any, are
// left fully intact; only the state and error message change.
func (s *Session) Calculate(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateFetching {
		s.mu.Unlock()
		return ErrFetchInProgress
	}
	if s.origin == "" || s.destination == "" {
		s.mu.Unlock()
		return ErrMissingAddress
	}

	// Starting a fetch commits the user's current selections.
	s.search.Invalidate(FieldOrigin)
	s.search.Invalidate(FieldDestination)
	s.suggestions[FieldOrigin] = nil
	s.suggestions[FieldDestination] = nil

	s.state = StateFetching
	s.errorMsg = ""
	origin, destination := s.origin, s.destination
	epoch := s.fetchEpoch
	s.mu.Unlock()

	route, err := s.fetcher.Fetch(ctx, origin, destination)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A reset landed while the fetch was in flight; its outcome is moot.
	if s.fetchEpoch != epoch {
		return nil
	}

	if err != nil {
		s.state = StateFailed
		s.errorMsg = err.Error()
		return err
	}

	s.route = route
	s.recomputeLocked()
	s.state = StateReady
	return nil
}

// UpdateSettings replaces the rate profile and recomputes the
// breakdown if a route is present. All values must be positive.
// Rejected while a fetch is in flight.
func (s *Session) UpdateSettings(settings costmodel.Settings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFetching {
		return ErrFetchInProgress
	}

	if settings.FuelPricePerGallon != s.settings.FuelPricePerGallon {
		s.fuelPriceEdited = true
		s.usingDefaultPrice = false
	}
	s.settings = settings
	s.recomputeLocked()
	return nil
}

// UpdateLoad replaces the weight configuration and recomputes the
// breakdown if a route is present.
func (s *Session) UpdateLoad(load costmodel.LoadConfig) error {
	if load.EmptyWeight < 0 || load.LoadWeight < 0 {
		return errors.New("weights must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFetching {
		return ErrFetchInProgress
	}

	s.load = load
	s.recomputeLocked()
	return nil
}

// SetNightsOverride supersedes the suggested overnight count until
// cleared.
func (s *Session) SetNightsOverride(nights int) error {
	if nights < 0 {
		return errors.New("nights override must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFetching {
		return ErrFetchInProgress
	}

	n := nights
	s.nightsOverride = &n
	s.recomputeLocked()
	return nil
}

// ClearNightsOverride restores the suggested-nights value.
func (s *Session) ClearNightsOverride() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFetching {
		return ErrFetchInProgress
	}

	s.nightsOverride = nil
	s.recomputeLocked()
	return nil
}

// ApplyFeedPrice installs a live diesel price fetched at startup. It
// is a no-op once the user has edited the fuel price, or for a
// non-positive price.
func (s *Session) ApplyFeedPrice(pricePerGallon float64) {
	if pricePerGallon <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fuelPriceEdited {
		return
	}

	s.settings.FuelPricePerGallon = pricePerGallon
	s.usingDefaultPrice = false
	s.recomputeLocked()
}

// Reset returns the session to Idle, clearing input, route, breakdown,
// override, and error, and discarding any in-flight fetch result.
// Settings and load survive a reset.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search.Invalidate(FieldOrigin)
	s.search.Invalidate(FieldDestination)
	s.fetchEpoch++

	s.origin = ""
	s.destination = ""
	s.suggestions[FieldOrigin] = nil
	s.suggestions[FieldDestination] = nil
	s.route = nil
	s.breakdown = costmodel.Breakdown{}
	s.nightsOverride = nil
	s.state = StateIdle
	s.errorMsg = ""
}

// Snapshot freezes the current inputs and outputs into an immutable
// SavedRoute record. Requires a fetched route.
func (s *Session) Snapshot() (*domain.SavedRoute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.route == nil {
		return nil, ErrNoRoute
	}

	var originLat, originLon, destLat, destLon float64
	if s.route.OriginCoord != nil {
		originLon, originLat = s.route.OriginCoord.Lon(), s.route.OriginCoord.Lat()
	}
	if s.route.DestinationCoord != nil {
		destLon, destLat = s.route.DestinationCoord.Lon(), s.route.DestinationCoord.Lat()
	}

	states := make([]string, len(s.route.StatesTraversed))
	copy(states, s.route.StatesTraversed)

	return &domain.SavedRoute{
		ID:              uuid.New(),
		Origin:          s.route.Origin,
		Destination:     s.route.Destination,
		DistanceMiles:   s.route.DistanceMiles,
		StatesTraversed: states,
		OriginLat:       originLat,
		OriginLon:       originLon,
		DestinationLat:  destLat,
		DestinationLon:  destLon,
		FuelCost:        s.breakdown.FuelCost,
		TollCost:        s.breakdown.TollCost,
		OvernightCost:   s.breakdown.OvernightCost,
		TotalCost:       s.breakdown.TotalCost(),
		CostPerMile:     s.breakdown.CostPerMile(),
		NumberOfNights:  s.breakdown.NumberOfNights,
		EmptyWeight:     s.load.EmptyWeight,
		LoadWeight:      s.load.LoadWeight,
		BaseMPG:         s.settings.BaseMPG,
		EffectiveMPG:    s.breakdown.EffectiveMPG,
		FuelPrice:       s.settings.FuelPricePerGallon,
		NightlyRate:     s.settings.NightlyRate,
		SavedAt:         time.Now().UTC(),
	}, nil
}

// View is a consistent copy of everything a caller may render.
type View struct {
	State                  State
	Origin                 string
	Destination            string
	OriginSuggestions      []domain.Suggestion
	DestinationSuggestions []domain.Suggestion
	Load                   costmodel.LoadConfig
	Settings               costmodel.Settings
	EffectiveMPG           float64
	Route                  *domain.Route
	Breakdown              costmodel.Breakdown
	NightsOverride         *int
	UsingDefaultPrice      bool
	ErrorMessage           string
}

// View returns an atomic snapshot of the session. The Route pointer is
// shared but the Route itself is immutable.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:                  s.state,
		Origin:                 s.origin,
		Destination:            s.destination,
		OriginSuggestions:      append([]domain.Suggestion(nil), s.suggestions[FieldOrigin]...),
		DestinationSuggestions: append([]domain.Suggestion(nil), s.suggestions[FieldDestination]...),
		Load:                   s.load,
		Settings:               s.settings,
		EffectiveMPG:           costmodel.EffectiveMPG(s.load.TotalWeight(), s.settings),
		Route:                  s.route,
		Breakdown:              s.breakdown,
		UsingDefaultPrice:      s.usingDefaultPrice,
		ErrorMessage:           s.errorMsg,
	}
	if s.nightsOverride != nil {
		n := *s.nightsOverride
		v.NightsOverride = &n
	}
	return v
}

// recomputeLocked rebuilds the breakdown from the current inputs. A
// no-op when no route has been fetched yet. Caller holds s.mu.
func (s *Session) recomputeLocked() {
	if s.route == nil {
		return
	}
	s.breakdown = costmodel.BuildBreakdown(s.route, s.load, s.settings, s.nightsOverride)
}

func validateSettings(s costmodel.Settings) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"base mpg", s.BaseMPG},
		{"base weight", s.BaseWeight},
		{"mpg penalty", s.MPGPenaltyPerPound},
		{"fuel price", s.FuelPricePerGallon},
		{"miles per day", s.MilesPerDay},
		{"nightly rate", s.NightlyRate},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive", f.name)
		}
	}
	return nil
}
