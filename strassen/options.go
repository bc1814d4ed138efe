// SPDX-License-Identifier: MIT

// Package strassen: functional configuration.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against defaults.
//
// Consumers:
//   - Multiply / Multiplier read every field.
package strassen

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the base-case side used by the example program and
	// the harness when no threshold is given.
	DefaultThreshold = 64

	// DefaultParallelDepth keeps the recursion sequential.
	DefaultParallelDepth = 0

	// DefaultMaxGoroutines means no per-level goroutine limit.
	DefaultMaxGoroutines = 0

	// DefaultMaxPaddedSize caps the padded side (two 32768² operands are 16 GiB).
	DefaultMaxPaddedSize = 1 << 15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicParallelDepthNegative = "strassen: WithParallelDepth: depth must be >= 0"
	panicMaxPaddedSizeInvalid  = "strassen: WithMaxPaddedSize: size must be a positive power of two"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	parallelDepth int    // >= 0; levels whose seven products run concurrently
	maxGoroutines int    // <= 0: unlimited
	maxPaddedSize int    // power of two
	stats         *Stats // optional recursion counters
}

// WithParallelDepth runs the seven sub-products of the top depth recursion
// levels concurrently. depth == 0 is the sequential baseline.
// Panics when depth is negative.
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic(panicParallelDepthNegative)
	}

	return func(o *Options) { o.parallelDepth = depth }
}

// WithMaxGoroutines limits the number of goroutines forked per parallel level.
// n <= 0 removes the limit. Has no effect without WithParallelDepth.
func WithMaxGoroutines(n int) Option {
	return func(o *Options) { o.maxGoroutines = n }
}

// WithMaxPaddedSize sets the largest accepted padded side.
// Panics when n is not a positive power of two.
func WithMaxPaddedSize(n int) Option {
	if !IsPowerOfTwo(n) {
		panic(panicMaxPaddedSizeInvalid)
	}

	return func(o *Options) { o.maxPaddedSize = n }
}

// WithStats records recursion counters into s. A nil s disables recording.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.stats = s }
}

// ParallelDepth reports the resolved parallel depth.
func (o Options) ParallelDepth() int { return o.parallelDepth }

// MaxGoroutines reports the resolved per-level goroutine limit.
func (o Options) MaxGoroutines() int { return o.maxGoroutines }

// MaxPaddedSize reports the resolved padded-size cap.
func (o Options) MaxPaddedSize() int { return o.maxPaddedSize }

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		parallelDepth: DefaultParallelDepth,
		maxGoroutines: DefaultMaxGoroutines,
		maxPaddedSize: DefaultMaxPaddedSize,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
