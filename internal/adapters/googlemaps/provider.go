// Package googlemaps implements the route and place-completion ports
// against the Google Routes API v2 and the Places autocomplete
// service. This is the toll-aware provider variant: it returns a toll
// estimate but no route geometry.
package googlemaps

import (
	"errors"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	maps "googlemaps.github.io/maps"
)

const (
	defaultBaseURL = "https://routes.googleapis.com"
	metersPerMile  = 1609.34

	suggestionTTL = 5 * time.Minute
)

// Provider is safe for concurrent use.
type Provider struct {
	apiKey  string
	baseURL string
	session *http.Client
	places  *maps.Client

	// Autocomplete responses are cached briefly; users retype the
	// same prefixes constantly while editing.
	suggestions *gocache.Cache
}

func New(apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	places, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Provider{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		session:     &http.Client{Timeout: 15 * time.Second},
		places:      places,
		suggestions: gocache.New(suggestionTTL, 2*suggestionTTL),
	}, nil
}
