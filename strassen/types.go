// SPDX-License-Identifier: MIT

package strassen

import (
	"sync/atomic"

	"github.com/katalvlaran/strassen/matrix"
)

// Stats collects recursion counters for one or more Multiply calls.
// All counters are atomic, so a Stats value may be shared by parallel
// recursion branches and read concurrently. The zero value is ready to use.
//
// Per non-base level the recursion issues exactly 7 sub-products and
// 18 half-size additions/subtractions; Stats lets callers observe that.
type Stats struct {
	levels         atomic.Int64  // deepest non-base level reached (1-based)
	recursiveCalls atomic.Uint64 // non-base invocations
	subProducts    atomic.Uint64 // recursive invocations issued by non-base levels
	baseCalls      atomic.Uint64 // invocations resolved by matrix.Mul
	additions      atomic.Uint64 // half-size Add/Sub kernel calls
}

// Levels reports the deepest non-base recursion level reached.
// A product resolved directly by the base case has zero levels.
func (s *Stats) Levels() int { return int(s.levels.Load()) }

// RecursiveCalls reports the number of invocations that split into quadrants.
func (s *Stats) RecursiveCalls() uint64 { return s.recursiveCalls.Load() }

// SubProducts reports the number of half-size products issued.
func (s *Stats) SubProducts() uint64 { return s.subProducts.Load() }

// BaseCalls reports the number of invocations handled by the standard product.
func (s *Stats) BaseCalls() uint64 { return s.baseCalls.Load() }

// Additions reports the number of half-size addition/subtraction kernels run.
func (s *Stats) Additions() uint64 { return s.additions.Load() }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.levels.Store(0)
	s.recursiveCalls.Store(0)
	s.subProducts.Store(0)
	s.baseCalls.Store(0)
	s.additions.Store(0)
}

// observeLevel raises levels to at least l.
func (s *Stats) observeLevel(l int) {
	for {
		cur := s.levels.Load()
		if int64(l) <= cur || s.levels.CompareAndSwap(cur, int64(l)) {
			return
		}
	}
}

// Multiplier is a reusable, validated Strassen configuration.
// It is immutable after New and safe for concurrent use
// (a shared Stats is updated atomically).
type Multiplier struct {
	threshold int
	opts      Options
}

// New validates threshold and resolves opts once.
// Errors: ErrInvalidThreshold.
func New(threshold int, opts ...Option) (*Multiplier, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return nil, strassenErrorf("New", err)
	}

	return &Multiplier{threshold: threshold, opts: gatherOptions(opts...)}, nil
}

// Threshold reports the configured base-case side.
func (m *Multiplier) Threshold() int { return m.threshold }

// Multiply computes a × b with the configured threshold and options.
// See the package-level Multiply for the contract.
func (m *Multiplier) Multiply(a, b matrix.Matrix) (*matrix.Dense, error) {
	return multiply(a, b, m.threshold, m.opts)
}
