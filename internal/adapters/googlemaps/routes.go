package googlemaps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/platform/obs"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

const fieldMask = "routes.distanceMeters,routes.duration,routes.travelAdvisory,routes.legs.travelAdvisory"

type waypoint struct {
	Address string `json:"address"`
}

type vehicleInfo struct {
	EmissionType string `json:"emissionType"`
}

type routeModifiers struct {
	VehicleInfo vehicleInfo `json:"vehicleInfo"`
}

type computeRoutesRequest struct {
	Origin                   waypoint       `json:"origin"`
	Destination              waypoint       `json:"destination"`
	TravelMode               string         `json:"travelMode"`
	RoutingPreference        string         `json:"routingPreference"`
	ComputeAlternativeRoutes bool           `json:"computeAlternativeRoutes"`
	ExtraComputations        []string       `json:"extraComputations"`
	RouteModifiers           routeModifiers `json:"routeModifiers"`
}

// money is the Routes API price shape: whole currency units as a
// string-encoded integer plus fractional nanos.
type money struct {
	CurrencyCode string `json:"currencyCode"`
	Units        string `json:"units"`
	Nanos        int64  `json:"nanos"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters float64 `json:"distanceMeters"`
		TravelAdvisory struct {
			TollInfo *struct {
				EstimatedPrice []money `json:"estimatedPrice"`
			} `json:"tollInfo"`
		} `json:"travelAdvisory"`
	} `json:"routes"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FetchRoute asks the Routes API for a toll-aware diesel truck route.
func (p *Provider) FetchRoute(ctx context.Context, origin, destination string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "googlemaps.FetchRoute")(&err)

	body := computeRoutesRequest{
		Origin:                   waypoint{Address: origin},
		Destination:              waypoint{Address: destination},
		TravelMode:               "DRIVE",
		RoutingPreference:        "TRAFFIC_AWARE",
		ComputeAlternativeRoutes: false,
		ExtraComputations:        []string{"TOLLS"},
		RouteModifiers:           routeModifiers{VehicleInfo: vehicleInfo{EmissionType: "DIESEL"}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("compute routes: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.baseURL+"/directions/v2:computeRoutes",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("compute routes: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", p.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := p.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("compute routes: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("compute routes: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope errorEnvelope
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Message != "" {
			return nil, &ports.APIError{Message: envelope.Error.Message}
		}
		return nil, &ports.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var decoded computeRoutesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}
	if len(decoded.Routes) == 0 {
		return nil, ports.ErrMalformedResponse
	}

	first := decoded.Routes[0]

	var tolls *domain.TollInfo
	if first.TravelAdvisory.TollInfo != nil {
		tolls = &domain.TollInfo{
			EstimatedCost: sumEstimatedPrice(first.TravelAdvisory.TollInfo.EstimatedPrice),
		}
	}

	return &domain.Route{
		Origin:          origin,
		Destination:     destination,
		DistanceMiles:   first.DistanceMeters / metersPerMile,
		StatesTraversed: []string{},
		Tolls:           tolls,
	}, nil
}

// sumEstimatedPrice totals units+nanos pairs with exact decimal
// arithmetic before converting to a float once at the end. Unparseable
// unit strings count as zero, matching the API's lenient contract.
func sumEstimatedPrice(prices []money) float64 {
	total := decimal.Zero
	for _, price := range prices {
		units, err := decimal.NewFromString(price.Units)
		if err != nil {
			units = decimal.Zero
		}
		total = total.Add(units).Add(decimal.New(price.Nanos, -9))
	}
	return total.InexactFloat64()
}
