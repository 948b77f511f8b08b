// Package idgen hands out integer user identifiers derived from the wall
// clock.
//
// A fresh Clock starts at the current Unix second. Ids requested within the
// same second, or after the clock steps backwards, continue from the last id
// issued, so every id is unique for the lifetime of the Clock. A Clock that
// replaces an earlier one (a restart against the same store) must be told the
// highest id already issued via Observe.
package idgen

import (
	"sync"
	"time"
)

// Clock is a time-seeded monotonic id source. The zero value is not usable;
// build one with New.
type Clock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// Option customises a Clock.
type Option func(*Clock)

// WithTimeSource replaces time.Now, mostly for tests.
func WithTimeSource(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// New returns a Clock reading time.Now unless overridden.
func New(opts ...Option) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Next returns the next identifier: the current Unix second, or last+1 when
// that would not be strictly greater than the previous id.
func (c *Clock) Next() int64 {
	ts := c.now().Unix()

	c.mu.Lock()
	defer c.mu.Unlock()

	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	return ts
}

// Observe records id as already issued elsewhere. Later calls to Next return
// values strictly greater than it.
func (c *Clock) Observe(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id > c.last {
		c.last = id
	}
}
