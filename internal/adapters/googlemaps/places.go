package googlemaps

import (
	"context"
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	maps "googlemaps.github.io/maps"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// Autocomplete returns US-biased address completions for a partial
// query, normalized to the internal Suggestion shape.
func (p *Provider) Autocomplete(ctx context.Context, query string) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if cached, ok := p.suggestions.Get(query); ok {
		return cached.([]domain.Suggestion), nil
	}

	req := &maps.PlaceAutocompleteRequest{
		Input: query,
		Types: maps.AutocompletePlaceTypeGeocode,
		Components: map[maps.Component][]string{
			maps.ComponentCountry: {"us"},
		},
	}

	resp, err := p.places.PlaceAutocomplete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place autocomplete %q: %w", query, err)
	}

	out := make([]domain.Suggestion, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		out = append(out, domain.Suggestion{
			DisplayText: prediction.Description,
			PlaceID:     prediction.PlaceID,
		})
	}

	p.suggestions.Set(query, out, gocache.DefaultExpiration)
	return out, nil
}
