// Package ors implements the route and place-completion ports against
// OpenRouteService. This is the geometry provider variant: it returns
// route geometry and endpoint coordinates but no toll data.
package ors

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/trent-alex/trucking-ROL/internal/adapters/cache"
)

const (
	defaultBaseURL = "https://api.openrouteservice.org"
	metersPerMile  = 1609.34
)

// Provider is safe for concurrent use.
type Provider struct {
	apiKey  string
	baseURL string
	session *http.Client

	// Persistent geocode cache; nil disables caching.
	geocodeCache *cache.SqliteGeocodeCache
}

func New(apiKey string, geocodeCache *cache.SqliteGeocodeCache) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &Provider{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		session:      &http.Client{Timeout: 15 * time.Second},
		geocodeCache: geocodeCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace and
// folding case, so retyped variants of one address share a cache row.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
