// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels (ew*).
//
// Purpose:
//   - Centralize the tolerance loops behind AllClose/ApproxEqual so both
//     facades share one numeric policy.
//
// Determinism:
//   - Row-major traversal; early exit on the first violation.

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// closeEnough reports |a-b| ≤ atol + rtol*|b|.
// NaN is never close; equal infinities are close.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true // covers +Inf==+Inf, -Inf==-Inf and exact matches
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances; normalize negatives to |x|.
//   - Stage 2: validate presence and shape equality.
//   - Stage 3: row-slice loop for package storage types, At-based loop otherwise.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var i, j int
	if ra, rb, ok := asRows(a, b); ok {
		var ar, br []float64
		for i = 0; i < r; i++ {
			ar, br = ra.row(i), rb.row(i)
			for j = range ar {
				if !closeEnough(ar[j], br[j], rtol, atol) {
					return false, nil
				}
			}
		}

		return true, nil
	}

	var av, bv float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
