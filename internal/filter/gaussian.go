// Package filter provides the windowed Gaussian filter used by the
// view-map point queries.
package filter

import (
	"errors"
	"math"
	"sync"
)

// RadiusFactor relates sigma to the half-window radius:
// bound = ceil(RadiusFactor * sigma). Three standard deviations cover
// 99.7% of the Gaussian distribution, so the mask decays to near-zero at
// the window edge. This is a tunable, not a derived constant.
const RadiusFactor = 3

// ErrWindowSize is returned by Compute when the window length does not
// match the mask size.
var ErrWindowSize = errors.New("filter: window length does not match mask size")

// Gaussian is a 2D Gaussian filter over a square pixel window.
//
// The mask weight at integer offset (i, j) from the window center is
// exp(-(i²+j²)/(2σ²)), normalized so all weights sum to 1.0. The mask is
// computed once at construction; a Gaussian is immutable afterwards and
// safe for concurrent use.
type Gaussian struct {
	sigma float64
	bound int
	mask  []float32 // (2*bound+1)² weights, row-major
}

// New creates a Gaussian filter for the given sigma.
// For sigma <= 0 the filter is the identity: bound 0, single-weight mask.
func New(sigma float64) *Gaussian {
	if sigma <= 0 {
		return &Gaussian{mask: []float32{1.0}}
	}

	bound := int(math.Ceil(RadiusFactor * sigma))
	size := 2*bound + 1

	mask := make([]float32, size*size)
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			dx := float64(i - bound)
			dy := float64(j - bound)
			val := math.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
			mask[j*size+i] = float32(val)
			sum += val
		}
	}

	// Normalize so the mask sums to 1.0.
	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range mask {
			mask[i] *= invSum
		}
	}

	return &Gaussian{
		sigma: sigma,
		bound: bound,
		mask:  mask,
	}
}

// Sigma returns the spread parameter the filter was built with.
func (g *Gaussian) Sigma() float64 {
	return g.sigma
}

// Bound returns the half-window radius in pixels. Callers gather a square
// window of (2*Bound()+1)² samples centered on the query point.
func (g *Gaussian) Bound() int {
	return g.bound
}

// MaskSize returns the window side length, 2*Bound()+1.
func (g *Gaussian) MaskSize() int {
	return 2*g.bound + 1
}

// Compute returns the Gaussian-weighted sum of a square sample window.
// The window must hold exactly (2*Bound()+1)² samples in row-major order,
// centered on the query point; otherwise Compute returns ErrWindowSize.
func (g *Gaussian) Compute(window []float32) (float64, error) {
	if len(window) != len(g.mask) {
		return 0, ErrWindowSize
	}
	sum := float64(0)
	for i, w := range window {
		sum += float64(w) * float64(g.mask[i])
	}
	return sum, nil
}

// maskCache caches computed Gaussian filters to avoid recomputing masks.
// Key is sigma * 100 (to handle float precision).
type maskCache struct {
	mu     sync.RWMutex
	cache  map[int]*Gaussian
	maxLen int
}

var defaultMaskCache = newMaskCache(64)

// newMaskCache creates a filter cache with the given maximum entries.
func newMaskCache(maxLen int) *maskCache {
	return &maskCache{
		cache:  make(map[int]*Gaussian),
		maxLen: maxLen,
	}
}

// get retrieves a filter from cache or builds and caches it.
func (c *maskCache) get(sigma float64) *Gaussian {
	// Quantize sigma to 0.01 precision
	key := int(sigma * 100)

	c.mu.RLock()
	if g, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return g
	}
	c.mu.RUnlock()

	g := New(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = g
	c.mu.Unlock()

	return g
}

// Cached returns a shared Gaussian filter for the sigma. This is more
// efficient when many functors are built with the same sigma.
func Cached(sigma float64) *Gaussian {
	return defaultMaskCache.get(sigma)
}
