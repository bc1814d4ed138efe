// SPDX-License-Identifier: MIT
// Package strassen: padding adapter and recursive multiplier.
//
// Purpose:
//   - Multiply: validate, pad to a power-of-two square, recurse, crop.
//   - recursion.mul: seven half-size products over no-copy quadrant views.
//
// Determinism:
//   - Every sum and product is formed in a fixed order; the parallel mode
//     only changes which goroutine computes a product, never how.

package strassen

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strassen/matrix"
)

const (
	opMultiply = "Multiply"
	opPad      = "pad"
	opRecurse  = "strassen"
)

// Multiply returns a × b computed with Strassen's algorithm.
//
// a is m×k and b is k×n with any positive m, k, n. threshold is the working
// side at or below which the standard product is used; it must be a positive
// power of two.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, positive dims, cols(a) == rows(b))
//     and the threshold.
//   - Stage 2: size = max(m, k, n); reject sizes above the padded-size cap;
//     padded = NextPowerOfTwo(size).
//   - Stage 3: embed a and b top-left into zero padded×padded matrices.
//   - Stage 4: run the recursion and return the top-left m×n block.
//
// Errors:
//   - matrix.ErrNilMatrix for nil operands.
//   - ErrIncompatibleShapes (also matrix.ErrDimensionMismatch) when cols(a) != rows(b).
//   - ErrInvalidThreshold when threshold is not a positive power of two.
//   - ErrSizeTooLarge when max(m, k, n) exceeds the padded-size cap.
//   - All of the above except nil operands match ErrInvalidArgument.
//
// Complexity:
//   - Time O(p^log2(7)) for p = padded side above the threshold, O(p³) at or below.
//   - Space O(p²) per recursion level.
//
// Inputs are never mutated. The result is a fresh m×n *matrix.Dense.
func Multiply(a, b matrix.Matrix, threshold int, opts ...Option) (*matrix.Dense, error) {
	return multiply(a, b, threshold, gatherOptions(opts...))
}

// multiply is the shared body of Multiply and (*Multiplier).Multiply.
func multiply(a, b matrix.Matrix, threshold int, o Options) (*matrix.Dense, error) {
	// Stage 1: validate.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	if m <= 0 || k <= 0 || b.Rows() <= 0 || n <= 0 {
		return nil, fmt.Errorf("%s: %w: %w", opMultiply, ErrInvalidArgument, matrix.ErrInvalidDimensions)
	}
	if k != b.Rows() {
		return nil, fmt.Errorf("%s: %dx%d · %dx%d: %w (%w)",
			opMultiply, m, k, b.Rows(), n, ErrIncompatibleShapes, matrix.ErrDimensionMismatch)
	}
	if err := ValidateThreshold(threshold); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	// Stage 2: padded side.
	size := max(m, k, n)
	if size > o.maxPaddedSize {
		return nil, fmt.Errorf("%s: max dimension %d > %d: %w", opMultiply, size, o.maxPaddedSize, ErrSizeTooLarge)
	}
	padded := PaddedSize(m, k, n)

	// Stage 3: pad.
	pa, err := pad(a, padded)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	pb, err := pad(b, padded)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	// Stage 4: recurse, then crop.
	r := &recursion{
		threshold:     threshold,
		parallelDepth: o.parallelDepth,
		maxGoroutines: o.maxGoroutines,
		stats:         o.stats,
	}
	cp, err := r.mul(pa, pb, 0)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	if m == padded && n == padded {
		return cp, nil
	}
	c, err := cp.Block(0, 0, m, n)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	return c, nil
}

// pad embeds m top-left into a fresh zero p×p matrix.
// Already-square p×p storage types are used as-is: the recursion only
// reads its operands.
func pad(m matrix.Matrix, p int) (matrix.Matrix, error) {
	if m.Rows() == p && m.Cols() == p {
		if _, ok := m.(viewer); ok {
			return m, nil
		}
	}
	d, err := matrix.NewDense(p, p)
	if err != nil {
		return nil, strassenErrorf(opPad, err)
	}
	if err = d.SetBlock(0, 0, m); err != nil {
		return nil, strassenErrorf(opPad, err)
	}

	return d, nil
}

// viewer is implemented by *matrix.Dense and *matrix.MatrixView.
type viewer interface {
	matrix.Matrix
	View(r0, c0, rows, cols int) (*matrix.MatrixView, error)
}

// recursion carries the per-call configuration down the recursion tree.
type recursion struct {
	threshold     int
	parallelDepth int
	maxGoroutines int
	stats         *Stats
}

// operand produces one side of a sub-product on demand, so that operand
// sums are formed inside the goroutine that consumes them.
type operand func() (matrix.Matrix, error)

// term is one signed summand of a quadrant combination.
type term struct {
	m   matrix.Matrix
	neg bool
}

func plus(m matrix.Matrix) term  { return term{m: m} }
func minus(m matrix.Matrix) term { return term{m: m, neg: true} }

// mul multiplies two equal-side power-of-two squares a and b.
//
// Implementation:
//   - Stage 1: side ≤ threshold → matrix.Mul (the only scalar products).
//   - Stage 2: split both operands into quadrant views.
//   - Stage 3: M1..M7 from 10 operand additions/subtractions and 7 recursive
//     calls, concurrently while depth < parallelDepth.
//   - Stage 4: C11..C22 from 8 additions/subtractions; assemble with SetBlock.
//
// Complexity: see Multiply.
func (r *recursion) mul(a, b matrix.Matrix, depth int) (*matrix.Dense, error) {
	n := a.Rows()

	// Stage 1: base case.
	if n <= r.threshold {
		if r.stats != nil {
			r.stats.baseCalls.Add(1)
		}

		return matrix.Mul(a, b)
	}
	if r.stats != nil {
		r.stats.recursiveCalls.Add(1)
		r.stats.subProducts.Add(7)
		r.stats.observeLevel(depth + 1)
	}

	// Stage 2: quadrants.
	half := n / 2
	aq, err := quadrants(a, half)
	if err != nil {
		return nil, strassenErrorf(opRecurse, err)
	}
	bq, err := quadrants(b, half)
	if err != nil {
		return nil, strassenErrorf(opRecurse, err)
	}
	a11, a12, a21, a22 := aq[0], aq[1], aq[2], aq[3]
	b11, b12, b21, b22 := bq[0], bq[1], bq[2], bq[3]

	// Stage 3: the seven products.
	factors := [7][2]operand{
		{r.sum(a11, a22), r.sum(b11, b22)},  // M1 = (A11 + A22)(B11 + B22)
		{r.sum(a21, a22), keep(b11)},        // M2 = (A21 + A22) B11
		{keep(a11), r.diff(b12, b22)},       // M3 = A11 (B12 − B22)
		{keep(a22), r.diff(b21, b11)},       // M4 = A22 (B21 − B11)
		{r.sum(a11, a12), keep(b22)},        // M5 = (A11 + A12) B22
		{r.diff(a21, a11), r.sum(b11, b12)}, // M6 = (A21 − A11)(B11 + B12)
		{r.diff(a12, a22), r.sum(b21, b22)}, // M7 = (A12 − A22)(B21 + B22)
	}
	var prods [7]*matrix.Dense
	product := func(i int) error {
		lhs, err := factors[i][0]()
		if err != nil {
			return err
		}
		rhs, err := factors[i][1]()
		if err != nil {
			return err
		}
		p, err := r.mul(lhs, rhs, depth+1)
		if err != nil {
			return err
		}
		prods[i] = p

		return nil
	}

	if depth < r.parallelDepth {
		var g errgroup.Group
		if r.maxGoroutines > 0 {
			g.SetLimit(r.maxGoroutines)
		}
		for i := range factors {
			g.Go(func() error { return product(i) })
		}
		if err = g.Wait(); err != nil {
			return nil, strassenErrorf(opRecurse, err)
		}
	} else {
		for i := range factors {
			if err = product(i); err != nil {
				return nil, strassenErrorf(opRecurse, err)
			}
		}
	}
	m1, m2, m3, m4, m5, m6, m7 := prods[0], prods[1], prods[2], prods[3], prods[4], prods[5], prods[6]

	// Stage 4: combine and assemble.
	var quads [4]*matrix.Dense
	for i, parts := range [4][]term{
		{plus(m1), plus(m4), minus(m5), plus(m7)}, // C11 = M1 + M4 − M5 + M7
		{plus(m3), plus(m5)},                      // C12 = M3 + M5
		{plus(m2), plus(m4)},                      // C21 = M2 + M4
		{plus(m1), minus(m2), plus(m3), plus(m6)}, // C22 = M1 − M2 + M3 + M6
	} {
		if quads[i], err = r.fold(parts[0].m, parts[1:]...); err != nil {
			return nil, strassenErrorf(opRecurse, err)
		}
	}

	c, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, strassenErrorf(opRecurse, err)
	}
	for i, q := range quads {
		if err = c.SetBlock((i/2)*half, (i%2)*half, q); err != nil {
			return nil, strassenErrorf(opRecurse, err)
		}
	}

	return c, nil
}

// quadrants splits the square m into [A11, A12, A21, A22] views of side half.
// Storage types without View are materialized once first.
func quadrants(m matrix.Matrix, half int) ([4]matrix.Matrix, error) {
	var q [4]matrix.Matrix
	v, ok := m.(viewer)
	if !ok {
		d, err := matrix.NewDense(m.Rows(), m.Cols())
		if err != nil {
			return q, err
		}
		if err = d.SetBlock(0, 0, m); err != nil {
			return q, err
		}
		v = d
	}
	for i := range q {
		w, err := v.View((i/2)*half, (i%2)*half, half, half)
		if err != nil {
			return q, err
		}
		q[i] = w
	}

	return q, nil
}

// keep passes x through unchanged.
func keep(x matrix.Matrix) operand {
	return func() (matrix.Matrix, error) { return x, nil }
}

// sum defers x + y.
func (r *recursion) sum(x, y matrix.Matrix) operand {
	return func() (matrix.Matrix, error) {
		s, err := r.add(x, y, false)
		if err != nil {
			return nil, err
		}

		return s, nil
	}
}

// diff defers x − y.
func (r *recursion) diff(x, y matrix.Matrix) operand {
	return func() (matrix.Matrix, error) {
		d, err := r.add(x, y, true)
		if err != nil {
			return nil, err
		}

		return d, nil
	}
}

// fold evaluates first ± rest[0] ± rest[1] ... left to right.
// rest must be non-empty.
func (r *recursion) fold(first matrix.Matrix, rest ...term) (*matrix.Dense, error) {
	var acc *matrix.Dense
	var err error
	lhs := first
	for _, t := range rest {
		if acc, err = r.add(lhs, t.m, t.neg); err != nil {
			return nil, err
		}
		lhs = acc
	}

	return acc, nil
}

// add runs one half-size Add (or Sub when neg) and counts it.
func (r *recursion) add(x, y matrix.Matrix, neg bool) (*matrix.Dense, error) {
	if r.stats != nil {
		r.stats.additions.Add(1)
	}
	if neg {
		return matrix.Sub(x, y)
	}

	return matrix.Add(x, y)
}
