package trip

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/trent-alex/trucking-ROL/internal/domain"
)

// stubSearcher answers every query with one suggestion echoing the
// query text, optionally delaying or failing.
type stubSearcher struct {
	mu      sync.Mutex
	delay   time.Duration
	err     error
	queries []string
}

func (s *stubSearcher) Autocomplete(ctx context.Context, query string) ([]domain.Suggestion, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Suggestion{{DisplayText: query + ", USA", PlaceID: "p-" + query}}, nil
}

func (s *stubSearcher) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

type delivery struct {
	field       Field
	gen         uint64
	suggestions []domain.Suggestion
}

type recorder struct {
	mu    sync.Mutex
	calls []delivery
}

func (r *recorder) deliver(field Field, gen uint64, suggestions []domain.Suggestion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, delivery{field, gen, suggestions})
}

func (r *recorder) all() []delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]delivery(nil), r.calls...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestQueryChangedDebouncesAndDelivers(t *testing.T) {
	searcher := &stubSearcher{}
	rec := &recorder{}
	ps := NewPlaceSearch(searcher, 5*time.Millisecond, rec.deliver)

	gen := ps.QueryChanged(FieldOrigin, "Phoenix")

	waitFor(t, func() bool { return len(rec.all()) == 1 })

	got := rec.all()[0]
	if got.field != FieldOrigin || got.gen != gen {
		t.Fatalf("delivery = %+v, want field=origin gen=%d", got, gen)
	}
	if len(got.suggestions) != 1 || got.suggestions[0].DisplayText != "Phoenix, USA" {
		t.Fatalf("unexpected suggestions: %+v", got.suggestions)
	}
}

func TestSupersededQueryIsNeverDelivered(t *testing.T) {
	searcher := &stubSearcher{}
	rec := &recorder{}
	ps := NewPlaceSearch(searcher, 20*time.Millisecond, rec.deliver)

	// Second keystroke arrives before the first debounce elapses.
	ps.QueryChanged(FieldOrigin, "Phoe")
	secondGen := ps.QueryChanged(FieldOrigin, "Phoenix")

	waitFor(t, func() bool { return len(rec.all()) >= 1 })
	time.Sleep(60 * time.Millisecond)

	calls := rec.all()
	if len(calls) != 1 {
		t.Fatalf("expected exactly one delivery, got %d", len(calls))
	}
	if calls[0].gen != secondGen {
		t.Fatalf("delivered generation %d, want %d", calls[0].gen, secondGen)
	}

	// The superseded lookup must not even reach the provider.
	for _, q := range searcher.calls() {
		if q == "Phoe" {
			t.Fatal("superseded query reached the provider")
		}
	}
}

func TestEmptyQueryEmitsImmediatelyWithoutProviderCall(t *testing.T) {
	searcher := &stubSearcher{}
	rec := &recorder{}
	ps := NewPlaceSearch(searcher, 50*time.Millisecond, rec.deliver)

	ps.QueryChanged(FieldDestination, "   ")

	calls := rec.all()
	if len(calls) != 1 {
		t.Fatalf("expected one synchronous delivery, got %d", len(calls))
	}
	if calls[0].suggestions != nil {
		t.Fatalf("expected empty suggestions, got %+v", calls[0].suggestions)
	}
	if len(searcher.calls()) != 0 {
		t.Fatal("empty query must not reach the provider")
	}
}

func TestProviderErrorYieldsEmptySuggestions(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("quota exceeded")}
	rec := &recorder{}
	ps := NewPlaceSearch(searcher, 5*time.Millisecond, rec.deliver)

	ps.QueryChanged(FieldOrigin, "Tulsa")

	waitFor(t, func() bool { return len(rec.all()) == 1 })
	if got := rec.all()[0].suggestions; got != nil {
		t.Fatalf("expected nil suggestions on provider error, got %+v", got)
	}
}

func TestInvalidateSuppressesInFlightResult(t *testing.T) {
	searcher := &stubSearcher{delay: 30 * time.Millisecond}
	rec := &recorder{}
	ps := NewPlaceSearch(searcher, time.Millisecond, rec.deliver)

	ps.QueryChanged(FieldOrigin, "Reno")
	// Let the lookup start, then invalidate mid-flight.
	waitFor(t, func() bool { return len(searcher.calls()) == 1 })
	ps.Invalidate(FieldOrigin)

	time.Sleep(80 * time.Millisecond)
	if n := len(rec.all()); n != 0 {
		t.Fatalf("invalidated lookup was delivered (%d deliveries)", n)
	}
}
