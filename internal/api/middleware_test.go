package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/trent-alex/trucking-ROL/internal/platform/obs"
)

func TestLoggingMiddlewareMintsRequestID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = obs.RequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	loggingMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trip", nil))

	if seen == "" {
		t.Fatal("handler context carried no request id")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", seen, err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestLoggingMiddlewareDistinctIDsPerRequest(t *testing.T) {
	ids := map[string]bool{}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[obs.RequestID(r.Context())] = true
	})

	h := loggingMiddleware(inner)
	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	if len(ids) != 3 {
		t.Fatalf("expected 3 distinct request ids, got %d", len(ids))
	}
}
