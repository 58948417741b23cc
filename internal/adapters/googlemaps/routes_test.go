package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trent-alex/trucking-ROL/internal/ports"
)

func testProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Provider{
		apiKey:  "test-key",
		baseURL: server.URL,
		session: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchRouteParsesDistanceAndTolls(t *testing.T) {
	provider := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/directions/v2:computeRoutes" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("X-Goog-Api-Key"); got != "test-key" {
			t.Fatalf("api key header = %q", got)
		}

		var req computeRoutesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.TravelMode != "DRIVE" || len(req.ExtraComputations) != 1 {
			t.Fatalf("unexpected request body: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"routes": [{
				"distanceMeters": 4465918,
				"travelAdvisory": {
					"tollInfo": {
						"estimatedPrice": [
							{"currencyCode": "USD", "units": "120", "nanos": 250000000},
							{"currencyCode": "USD", "units": "36", "nanos": 250000000}
						]
					}
				}
			}]
		}`))
	})

	route, err := provider.FetchRoute(context.Background(), "Los Angeles, CA", "New York, NY")
	if err != nil {
		t.Fatalf("fetch route: %v", err)
	}

	if math.Abs(route.DistanceMiles-2775.0) > 0.5 {
		t.Fatalf("distance = %v miles, want about 2775", route.DistanceMiles)
	}
	if route.Tolls == nil {
		t.Fatal("expected toll info")
	}
	if math.Abs(route.Tolls.EstimatedCost-156.50) > 1e-9 {
		t.Fatalf("toll estimate = %v, want 156.50", route.Tolls.EstimatedCost)
	}
	if route.Origin != "Los Angeles, CA" || route.Destination != "New York, NY" {
		t.Fatalf("endpoints: %q -> %q", route.Origin, route.Destination)
	}
}

func TestFetchRouteNoTollData(t *testing.T) {
	provider := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes": [{"distanceMeters": 160934, "travelAdvisory": {}}]}`))
	})

	route, err := provider.FetchRoute(context.Background(), "A", "B")
	if err != nil {
		t.Fatalf("fetch route: %v", err)
	}
	if route.Tolls != nil {
		t.Fatalf("expected absent toll info, got %+v", route.Tolls)
	}
}

func TestFetchRouteAPIError(t *testing.T) {
	provider := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "Address not geocoded", "status": "INVALID_ARGUMENT"}}`))
	})

	_, err := provider.FetchRoute(context.Background(), "nowhere", "anywhere")
	var apiErr *ports.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Message != "Address not geocoded" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestFetchRouteHTTPErrorWithoutEnvelope(t *testing.T) {
	provider := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := provider.FetchRoute(context.Background(), "A", "B")
	var statusErr *ports.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if statusErr.Code != http.StatusBadGateway {
		t.Fatalf("code = %d", statusErr.Code)
	}
}

func TestFetchRouteMalformedBody(t *testing.T) {
	provider := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes": []}`))
	})

	_, err := provider.FetchRoute(context.Background(), "A", "B")
	if !errors.Is(err, ports.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestSumEstimatedPriceExactness(t *testing.T) {
	prices := []money{
		{Units: "0", Nanos: 100000000},
		{Units: "0", Nanos: 200000000},
		{Units: "not-a-number", Nanos: 700000000},
	}
	// 0.1 + 0.2 + 0.7 must come out exactly 1.0 through decimal math.
	if got := sumEstimatedPrice(prices); got != 1.0 {
		t.Fatalf("sum = %v, want exactly 1.0", got)
	}
}
