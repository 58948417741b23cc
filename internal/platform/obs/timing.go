// Package obs holds small observability helpers shared by adapters.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request id minted by the HTTP
// middleware; provider calls started outside a request log an empty id.
const RequestIDKey ctxKey = "req_id"

// RequestID returns the id stored in ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration and outcome of one operation when the
// returned func runs, typically via defer:
//
//	defer obs.Time(ctx, "ors.FetchRoute")(&err)
//
// A nil errp logs duration only.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
