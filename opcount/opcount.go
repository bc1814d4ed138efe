// SPDX-License-Identifier: MIT

package opcount

import (
	"fmt"
	"math"
	"math/bits"
)

// additionsPerLevel is the number of half-size additions/subtractions one
// Strassen level performs (10 to form operands, 8 to combine products).
const additionsPerLevel = 18

// Counts holds scalar operation counts.
type Counts struct {
	Multiplications uint64
	Additions       uint64 // additions and subtractions
}

// Total returns Multiplications + Additions.
func (c Counts) Total() uint64 { return c.Multiplications + c.Additions }

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Multiplications: c.Multiplications + o.Multiplications,
		Additions:       c.Additions + o.Additions,
	}
}

// String renders the counts as "mul=… add=…".
func (c Counts) String() string {
	return fmt.Sprintf("mul=%d add=%d", c.Multiplications, c.Additions)
}

// Standard returns the classical n×n product counts: n³ multiplications and
// n²·(n−1) additions.
//
// Errors: ErrInvalidSize (n ≤ 0), ErrOverflow.
func Standard(n int) (Counts, error) {
	c, err := standardRect(n, n, n)
	if err != nil {
		return Counts{}, fmt.Errorf("Standard(%d): %w", n, err)
	}

	return c, nil
}

// StandardRect returns the classical m×k by k×n product counts:
// m·k·n multiplications and m·n·(k−1) additions.
//
// Errors: ErrInvalidSize (any dimension ≤ 0), ErrOverflow.
func StandardRect(m, k, n int) (Counts, error) {
	c, err := standardRect(m, k, n)
	if err != nil {
		return Counts{}, fmt.Errorf("StandardRect(%d, %d, %d): %w", m, k, n, err)
	}

	return c, nil
}

func standardRect(m, k, n int) (Counts, error) {
	if m <= 0 || k <= 0 || n <= 0 {
		return Counts{}, ErrInvalidSize
	}
	um, uk, un := uint64(m), uint64(k), uint64(n)
	mn, ok := mul64(um, un)
	if !ok {
		return Counts{}, ErrOverflow
	}
	mults, ok := mul64(mn, uk)
	if !ok {
		return Counts{}, ErrOverflow
	}

	// mn·(k−1) < mn·k, so it cannot overflow once mults fits.
	return Counts{Multiplications: mults, Additions: mn * (uk - 1)}, nil
}

// Strassen returns the counts of Strassen's algorithm for an n×n product with
// the given base-case threshold. n is first rounded up to a power of two,
// the way the multiplier pads its operands.
//
// Errors: ErrInvalidSize (n ≤ 0), ErrInvalidThreshold, ErrSizeTooLarge,
// ErrOverflow.
// Complexity: O(log(n/threshold)).
func Strassen(n, threshold int) (Counts, error) {
	if n <= 0 {
		return Counts{}, fmt.Errorf("Strassen(%d, %d): %w", n, threshold, ErrInvalidSize)
	}
	if threshold <= 0 || threshold&(threshold-1) != 0 {
		return Counts{}, fmt.Errorf("Strassen(%d, %d): %w", n, threshold, ErrInvalidThreshold)
	}
	p := 1
	for p < n {
		if p > math.MaxInt>>1 {
			return Counts{}, fmt.Errorf("Strassen(%d, %d): %w", n, threshold, ErrSizeTooLarge)
		}
		p <<= 1
	}
	c, err := strassen(p, threshold)
	if err != nil {
		return Counts{}, fmt.Errorf("Strassen(%d, %d): %w", n, threshold, err)
	}

	return c, nil
}

// strassen evaluates the recurrence for a power-of-two side p.
func strassen(p, threshold int) (Counts, error) {
	if p <= threshold {
		return standardRect(p, p, p)
	}
	sub, err := strassen(p/2, threshold)
	if err != nil {
		return Counts{}, err
	}
	half := uint64(p / 2)

	mults, ok := mul64(7, sub.Multiplications)
	if !ok {
		return Counts{}, ErrOverflow
	}
	adds, ok := mul64(7, sub.Additions)
	if !ok {
		return Counts{}, ErrOverflow
	}
	sq, ok := mul64(half, half)
	if !ok {
		return Counts{}, ErrOverflow
	}
	level, ok := mul64(additionsPerLevel, sq)
	if !ok {
		return Counts{}, ErrOverflow
	}
	adds, carry := bits.Add64(adds, level, 0)
	if carry != 0 {
		return Counts{}, ErrOverflow
	}

	return Counts{Multiplications: mults, Additions: adds}, nil
}

// mul64 returns a·b and whether it fits in uint64.
func mul64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}
