package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/paulmach/orb"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/platform/obs"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// FetchRoute geocodes both endpoints and requests a heavy-goods
// driving route between them. Typed geocode failures pass through
// unwrapped so the caller can surface them verbatim.
func (o *Provider) FetchRoute(ctx context.Context, origin, destination string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "ors.FetchRoute")(&err)

	originPt, err := o.geocode(ctx, origin)
	if err != nil {
		return nil, err
	}
	destinationPt, err := o.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{
			{originPt.Lon(), originPt.Lat()},
			{destinationPt.Lon(), destinationPt.Lat()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("directions: marshal request: %w", err)
	}

	req, err := o.newRequest(
		ctx,
		http.MethodPost,
		o.baseURL+"/v2/directions/driving-hgv/geojson",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}

	resp, err := o.do(req)
	if err != nil {
		// ORS answers 404 when no route connects two valid points.
		var statusErr *ports.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, ports.ErrNoRouteFound
		}
		return nil, err
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}
	if len(decoded.Features) == 0 {
		return nil, ports.ErrNoRouteFound
	}

	first := decoded.Features[0]

	geometry := make(orb.LineString, 0, len(first.Geometry.Coordinates))
	for _, c := range first.Geometry.Coordinates {
		if len(c) < 2 {
			return nil, fmt.Errorf("%w: invalid geometry point", ports.ErrMalformedResponse)
		}
		geometry = append(geometry, orb.Point{c[0], c[1]})
	}

	return &domain.Route{
		Origin:           origin,
		Destination:      destination,
		DistanceMiles:    first.Properties.Summary.Distance / metersPerMile,
		StatesTraversed:  []string{},
		Geometry:         geometry,
		OriginCoord:      &originPt,
		DestinationCoord: &destinationPt,
	}, nil
}
