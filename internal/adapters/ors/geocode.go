package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/paulmach/orb"

	"github.com/trent-alex/trucking-ROL/internal/platform/obs"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
			GID   string `json:"gid"`
		} `json:"properties"`
	} `json:"features"`
}

// geocode resolves one address to a coordinate via /geocode/search,
// consulting the persistent cache first. An address with no match is a
// LocationNotFoundError carrying the text as submitted.
func (o *Provider) geocode(ctx context.Context, address string) (_ orb.Point, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	norm := normalize(address)

	if o.geocodeCache != nil {
		pt, ok, err := o.geocodeCache.Get(ctx, norm)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if ok {
			return pt, nil
		}
	}

	req, err := o.newRequest(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return orb.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}

	q := req.URL.Query()
	q.Set("text", norm)
	q.Set("boundary.country", "US")
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := o.do(req)
	if err != nil {
		return orb.Point{}, err
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return orb.Point{}, fmt.Errorf("%w: %v", ports.ErrMalformedResponse, err)
	}

	if len(decoded.Features) == 0 {
		return orb.Point{}, &ports.LocationNotFoundError{Address: address}
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return orb.Point{}, fmt.Errorf("%w: invalid coordinate format for %q", ports.ErrMalformedResponse, address)
	}

	pt := orb.Point{coords[0], coords[1]}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.Put(ctx, norm, pt); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return pt, nil
}
