package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

// Autocomplete returns US-biased completions from the ORS geocoder,
// normalized to the internal Suggestion shape.
func (o *Provider) Autocomplete(ctx context.Context, query string) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	req, err := o.newRequest(ctx, http.MethodGet, o.baseURL+"/geocode/autocomplete", nil)
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", query, err)
	}

	q := req.URL.Query()
	q.Set("text", query)
	q.Set("boundary.country", "US")
	q.Set("size", "5")
	req.URL.RawQuery = q.Encode()

	resp, err := o.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}

	out := make([]domain.Suggestion, 0, len(decoded.Features))
	for _, feature := range decoded.Features {
		if feature.Properties.Label == "" {
			continue
		}
		out = append(out, domain.Suggestion{
			DisplayText: feature.Properties.Label,
			PlaceID:     feature.Properties.GID,
		})
	}
	return out, nil
}
