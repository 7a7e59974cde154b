// SPDX-License-Identifier: MIT

package oracle

import (
	"sync"

	"github.com/katalvlaran/cubature/monomial"
)

// Cached memoises another Oracle by exponent. Safe for concurrent use.
// Errors are not cached.
type Cached struct {
	inner Oracle
	mu    sync.RWMutex
	memo  map[monomial.Exponent]float64
}

// NewCached wraps o.
func NewCached(o Oracle) *Cached {
	return &Cached{inner: o, memo: make(map[monomial.Exponent]float64)}
}

// Integrate returns the memoised value or computes and stores it. Two
// goroutines racing on a cold key may both compute it; both store the
// same value.
func (c *Cached) Integrate(e monomial.Exponent) (float64, error) {
	c.mu.RLock()
	v, ok := c.memo[e]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := c.inner.Integrate(e)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.memo[e] = v
	c.mu.Unlock()

	return v, nil
}

// Len returns the number of memoised exponents.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.memo)
}
