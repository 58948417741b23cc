// Package fuelprice fetches the current US average diesel price from
// the EIA open-data API. The feed is strictly best effort: any failure
// means "use the default price", never an error.
package fuelprice

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trent-alex/trucking-ROL/internal/platform/obs"
)

const defaultBaseURL = "https://api.eia.gov"

type Feed struct {
	apiKey  string
	baseURL string
	session *http.Client
}

// New returns a feed; an empty api key yields a feed that always
// reports unavailable.
func New(apiKey string) *Feed {
	return &Feed{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		session: &http.Client{Timeout: 5 * time.Second},
	}
}

type eiaResponse struct {
	Response struct {
		Data []struct {
			Value float64 `json:"value"`
		} `json:"data"`
	} `json:"response"`
}

// DieselPricePerGallon returns the latest weekly US retail diesel
// price, or (0, false) on any failure.
func (f *Feed) DieselPricePerGallon(ctx context.Context) (price float64, ok bool) {
	defer obs.Time(ctx, "fuelprice.DieselPricePerGallon")(nil)

	if f.apiKey == "" {
		return 0, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/v2/petroleum/pri/gnd/data/", nil)
	if err != nil {
		return 0, false
	}

	q := req.URL.Query()
	q.Set("api_key", f.apiKey)
	q.Set("frequency", "weekly")
	q.Set("data[0]", "value")
	q.Set("facets[product][]", "EPD2D")
	q.Set("facets[duoarea][]", "NUS")
	q.Set("sort[0][column]", "period")
	q.Set("sort[0][direction]", "desc")
	q.Set("length", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := f.session.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false
	}

	var decoded eiaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, false
	}
	if len(decoded.Response.Data) == 0 {
		return 0, false
	}

	value := decoded.Response.Data[0].Value
	if value <= 0 {
		return 0, false
	}
	return value, true
}
