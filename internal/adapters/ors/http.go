package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/trent-alex/trucking-ROL/internal/ports"
)

func (o *Provider) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

type orsErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do executes a request and converts non-2xx responses into the typed
// fetch-error taxonomy. A single failure is terminal; there is no
// retry here because the coordinators surface every provider failure
// directly.
func (o *Provider) do(req *http.Request) (*http.Response, error) {
	resp, err := o.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var envelope orsErrorEnvelope
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Message != "" {
			return nil, &ports.APIError{Message: envelope.Error.Message}
		}
		return nil, &ports.StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(raw)),
		}
	}
	return resp, nil
}
