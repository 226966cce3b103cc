package services

import (
	"fmt"
	"sync"
	"time"
)

// NumberGenerator issues invoice numbers of the form PREFIX-<unix millis>.
// Two invoices finalized within the same millisecond would collide, so the
// generator bumps past the last issued timestamp to keep numbers unique
// and strictly increasing.
type NumberGenerator struct {
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	last int64
}

// NewNumberGenerator returns a generator using the given prefix and clock.
// A nil clock defaults to time.Now.
func NewNumberGenerator(prefix string, now func() time.Time) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	return &NumberGenerator{prefix: prefix, now: now}
}

// Next issues the next invoice number.
func (g *NumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s-%d", g.prefix, ms)
}
