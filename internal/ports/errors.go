package ports

import (
	"errors"
	"fmt"
)

// Route-fetch failure taxonomy. These cross the provider boundary
// untouched so the session can surface them verbatim.

var (
	ErrNoRouteFound      = errors.New("no route found between the specified locations")
	ErrMalformedResponse = errors.New("failed to parse provider response")

	// ErrNotFound is returned by repositories for unknown record ids.
	ErrNotFound = errors.New("saved route not found")
)

// LocationNotFoundError reports that one of the submitted address
// strings could not be resolved to a place.
type LocationNotFoundError struct {
	Address string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("could not find location: %s", e.Address)
}

// APIError carries a provider-reported error message.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "provider error: " + e.Message
}

// StatusError is a non-2xx provider response with no usable error
// envelope.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
}
