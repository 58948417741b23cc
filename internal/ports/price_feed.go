package ports

import "context"

// Best-effort source for the current diesel price per gallon.
type PriceFeed interface {
	// DieselPricePerGallon reports (price, true) on success and
	// (0, false) on any failure. It never returns an error; callers
	// fall back to a default price.
	DieselPricePerGallon(ctx context.Context) (float64, bool)
}
