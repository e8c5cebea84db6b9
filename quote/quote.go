// Package quote picks motivational quotes for the quote box.
package quote

import (
	"math/rand/v2"
	"sync"
)

// Builtin is the fixed list shown when no override is configured.
var Builtin = []string{
	"Believe you can and you're halfway there.",
	"Act as if what you do makes a difference. It does.",
	"Success is not final, failure is not fatal: It is the courage to continue that counts.",
	"Hardships often prepare ordinary people for an extraordinary destiny.",
	"Do not wait; the time will never be 'just right.' Start where you stand, and work with whatever tools you may have at your command, and better tools will be found as you go along.",
	"The only limit to our realization of tomorrow is our doubts of today.",
	"The only way to do great work is to love what you do.",
}

// Rotator holds the quote list and the quote currently displayed.
type Rotator struct {
	mu      sync.Mutex
	quotes  []string
	rnd     *rand.Rand
	current string
}

// NewRotator creates a rotator over quotes, or Builtin when quotes is empty.
// A nil rnd uses a randomly seeded generator.
func NewRotator(quotes []string, rnd *rand.Rand) *Rotator {
	if len(quotes) == 0 {
		quotes = Builtin
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	list := make([]string, len(quotes))
	copy(list, quotes)
	return &Rotator{quotes: list, rnd: rnd}
}

// Next replaces the current quote with one drawn uniformly at random.
// Consecutive calls may return the same quote.
func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = r.quotes[r.rnd.IntN(len(r.quotes))]
	return r.current
}

// Current returns the quote on display, empty before the first Next.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Len returns the number of quotes in rotation.
func (r *Rotator) Len() int {
	return len(r.quotes)
}
