package trip

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
)

// Field identifies which address box a search or edit targets.
type Field int

const (
	FieldOrigin Field = iota
	FieldDestination
)

func (f Field) String() string {
	if f == FieldOrigin {
		return "origin"
	}
	return "destination"
}

const (
	defaultDebounce = 300 * time.Millisecond
	searchTimeout   = 10 * time.Second
)

// deliverFunc receives the suggestions for a completed lookup together
// with the generation that produced them. The receiver must discard
// the result if the generation is no longer current.
type deliverFunc func(field Field, gen uint64, suggestions []domain.Suggestion)

// PlaceSearch debounces free-text edits into at most one outstanding
// provider lookup per field. Each new query bumps the field's
// generation; only the result of the highest generation is ever
// delivered (stale-result suppression).
type PlaceSearch struct {
	searcher ports.PlaceSearcher
	debounce time.Duration
	deliver  deliverFunc

	gens [2]atomic.Uint64
}

func NewPlaceSearch(searcher ports.PlaceSearcher, debounce time.Duration, deliver deliverFunc) *PlaceSearch {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &PlaceSearch{
		searcher: searcher,
		debounce: debounce,
		deliver:  deliver,
	}
}

// Generation returns the field's current request generation.
func (p *PlaceSearch) Generation(field Field) uint64 {
	return p.gens[field].Load()
}

// Invalidate discards any pending or in-flight lookup for the field
// without scheduling a new one.
func (p *PlaceSearch) Invalidate(field Field) {
	p.gens[field].Add(1)
}

// QueryChanged supersedes any pending lookup for the field. An empty
// query delivers an empty list immediately and performs no provider
// call; anything else is looked up after the debounce interval.
// Returns the generation assigned to this query.
func (p *PlaceSearch) QueryChanged(field Field, text string) uint64 {
	gen := p.gens[field].Add(1)

	if strings.TrimSpace(text) == "" {
		p.deliver(field, gen, nil)
		return gen
	}

	go p.lookup(field, gen, text)
	return gen
}

func (p *PlaceSearch) lookup(field Field, gen uint64, text string) {
	timer := time.NewTimer(p.debounce)
	defer timer.Stop()
	<-timer.C

	if p.gens[field].Load() != gen {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	suggestions, err := p.searcher.Autocomplete(ctx, text)
	if err != nil {
		// Search failures are not user-facing errors, only a
		// temporary absence of suggestions.
		suggestions = nil
	}

	if p.gens[field].Load() != gen {
		return
	}
	p.deliver(field, gen, suggestions)
}
