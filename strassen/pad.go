// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two ≥ n, found by doubling
// from 1. NextPowerOfTwo(n) == 1 for n ≤ 1, and 0 when no power of two
// representable as int is ≥ n.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		if p > math.MaxInt>>1 {
			return 0
		}
		p <<= 1
	}

	return p
}

// PaddedSize returns the working side for an m×k by k×n product:
// the smallest power of two ≥ max(m, k, n).
func PaddedSize(m, k, n int) int {
	return NextPowerOfTwo(lo.Max([]int{m, k, n}))
}

// ValidateThreshold returns a wrapped ErrInvalidThreshold unless t is a
// positive power of two.
func ValidateThreshold(t int) error {
	if !IsPowerOfTwo(t) {
		return fmt.Errorf("ValidateThreshold(%d): %w", t, ErrInvalidThreshold)
	}

	return nil
}
