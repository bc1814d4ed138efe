// SPDX-License-Identifier: MIT

package strassen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

const tol = 1e-9

// TestMultiply_MatchesStandard checks equivalence with the classical product
// across square and rectangular shapes.
func TestMultiply_MatchesStandard(t *testing.T) {
	t.Parallel()

	shapes := [][3]int{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 3},
		{8, 8, 8},
		{17, 17, 17},
		{5, 3, 7},
		{1, 9, 1},
		{9, 1, 9},
		{33, 20, 12},
		{64, 64, 64},
	}
	for idx, s := range shapes {
		m, k, n := s[0], s[1], s[2]
		t.Run(fmt.Sprintf("%dx%d*%dx%d", m, k, k, n), func(t *testing.T) {
			t.Parallel()
			a := RandDense(t, m, k, int64(2*idx+1))
			b := RandDense(t, k, n, int64(2*idx+2))

			got, err := strassen.Multiply(a, b, 2)
			require.NoError(t, err)
			require.Equal(t, m, got.Rows())
			require.Equal(t, n, got.Cols())
			RequireRowsClose(t, Standard(t, a, b), got, tol)
		})
	}
}

// TestMultiply_ThresholdInvariance runs the thresholds used by the benchmark
// program on one 100×100 product.
func TestMultiply_ThresholdInvariance(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 100, 100, 42)
	b := RandDense(t, 100, 100, 43)
	want := Standard(t, a, b)

	for _, th := range []int{2, 4, 16, 64, 128} {
		th := th
		t.Run(fmt.Sprintf("threshold=%d", th), func(t *testing.T) {
			got, err := strassen.Multiply(a, b, th)
			require.NoError(t, err)
			RequireRowsClose(t, want, got, tol)

			d, err := matrix.DiffNorm(want, got)
			require.NoError(t, err)
			assert.Less(t, d, 1e-10)
		})
	}
}

// TestMultiply_ShapePreservation covers the 5×3 · 3×7 case with known values.
func TestMultiply_ShapePreservation(t *testing.T) {
	t.Parallel()

	a := IntDense(t, 5, 3, 1)
	b := IntDense(t, 3, 7, 2)

	got, err := strassen.Multiply(a, b, 2)
	require.NoError(t, err)
	require.Equal(t, 5, got.Rows())
	require.Equal(t, 7, got.Cols())
	RequireIdentical(t, Standard(t, a, b), got)
}

func TestMultiply_Literal(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := strassen.Multiply(a, b, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, got.ToRows())
}

// TestMultiply_IdentityAndZero checks A·I = A and A·0 = 0.
func TestMultiply_IdentityAndZero(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 12, 12, 7)
	id, err := matrix.NewIdentity(12)
	require.NoError(t, err)

	got, err := strassen.Multiply(a, id, 2)
	require.NoError(t, err)
	RequireRowsClose(t, a, got, tol)

	got, err = strassen.Multiply(id, a, 4)
	require.NoError(t, err)
	RequireRowsClose(t, a, got, tol)

	zero, err := matrix.NewZeros(12, 5)
	require.NoError(t, err)
	got, err = strassen.Multiply(a, zero, 2)
	require.NoError(t, err)
	wantZero, err := matrix.NewZeros(12, 5)
	require.NoError(t, err)
	RequireIdentical(t, wantZero, got)
}

// TestMultiply_IntegerExact relies on integer arithmetic being exact: every
// threshold must reproduce the classical product bit for bit.
func TestMultiply_IntegerExact(t *testing.T) {
	t.Parallel()

	a := IntDense(t, 16, 16, 3)
	b := IntDense(t, 16, 16, 4)
	want := Standard(t, a, b)
	for _, th := range []int{1, 2, 4, 8, 16, 32} {
		got, err := strassen.Multiply(a, b, th)
		require.NoError(t, err)
		RequireIdentical(t, want, got)
	}
}

// TestMultiply_BaseCaseExact checks that a padded size within the threshold
// is a plain classical product (zero padding adds nothing).
func TestMultiply_BaseCaseExact(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 6, 5, 10)
	b := RandDense(t, 5, 7, 11)

	var st strassen.Stats
	got, err := strassen.Multiply(a, b, 8, strassen.WithStats(&st))
	require.NoError(t, err)
	RequireIdentical(t, Standard(t, a, b), got)
	require.Equal(t, 0, st.Levels())
	require.Equal(t, uint64(1), st.BaseCalls())
	require.Zero(t, st.Additions())
}

// TestMultiply_OneLevelMatchesSevenProducts recomputes a 4×4 product with
// threshold 2 from the seven-product formula on 2×2 blocks.
func TestMultiply_OneLevelMatchesSevenProducts(t *testing.T) {
	t.Parallel()

	// identity plus noise
	a := MustFrom(t, [][]float64{
		{1.1, 0.2, -0.3, 0.05},
		{0.4, 0.9, 0.1, -0.2},
		{-0.1, 0.3, 1.2, 0.6},
		{0.25, -0.4, 0.7, 1.05},
	})
	b := MustFrom(t, [][]float64{
		{0.95, -0.15, 0.2, 0.3},
		{0.05, 1.3, -0.45, 0.1},
		{0.6, 0.2, 0.8, -0.35},
		{-0.2, 0.45, 0.15, 1.1},
	})

	blk := func(m *matrix.Dense, i, j int) *matrix.Dense {
		q, err := m.Block(2*i, 2*j, 2, 2)
		require.NoError(t, err)
		return q
	}
	must := func(d *matrix.Dense, err error) *matrix.Dense {
		require.NoError(t, err)
		return d
	}
	a11, a12, a21, a22 := blk(a, 0, 0), blk(a, 0, 1), blk(a, 1, 0), blk(a, 1, 1)
	b11, b12, b21, b22 := blk(b, 0, 0), blk(b, 0, 1), blk(b, 1, 0), blk(b, 1, 1)

	m1 := must(matrix.Mul(must(matrix.Add(a11, a22)), must(matrix.Add(b11, b22))))
	m2 := must(matrix.Mul(must(matrix.Add(a21, a22)), b11))
	m3 := must(matrix.Mul(a11, must(matrix.Sub(b12, b22))))
	m4 := must(matrix.Mul(a22, must(matrix.Sub(b21, b11))))
	m5 := must(matrix.Mul(must(matrix.Add(a11, a12)), b22))
	m6 := must(matrix.Mul(must(matrix.Sub(a21, a11)), must(matrix.Add(b11, b12))))
	m7 := must(matrix.Mul(must(matrix.Sub(a12, a22)), must(matrix.Add(b21, b22))))

	c11 := must(matrix.Add(must(matrix.Sub(must(matrix.Add(m1, m4)), m5)), m7))
	c12 := must(matrix.Add(m3, m5))
	c21 := must(matrix.Add(m2, m4))
	c22 := must(matrix.Add(must(matrix.Add(must(matrix.Sub(m1, m2)), m3)), m6))

	want := must(matrix.NewDense(4, 4))
	require.NoError(t, want.SetBlock(0, 0, c11))
	require.NoError(t, want.SetBlock(0, 2, c12))
	require.NoError(t, want.SetBlock(2, 0, c21))
	require.NoError(t, want.SetBlock(2, 2, c22))

	got, err := strassen.Multiply(a, b, 2)
	require.NoError(t, err)
	RequireIdentical(t, want, got)
	RequireRowsClose(t, Standard(t, a, b), got, 1e-12)
}

// TestMultiply_Errors covers every rejected input.
func TestMultiply_Errors(t *testing.T) {
	t.Parallel()

	a45 := RandDense(t, 4, 5, 1)
	b33 := RandDense(t, 3, 3, 2)
	sq := RandDense(t, 4, 4, 3)
	var typedNil *matrix.Dense

	tests := []struct {
		name      string
		a, b      matrix.Matrix
		threshold int
		opts      []strassen.Option
		want      []error
	}{
		{"incompatible 4x5*3x3", a45, b33, 2, nil,
			[]error{strassen.ErrIncompatibleShapes, strassen.ErrInvalidArgument, matrix.ErrDimensionMismatch}},
		{"threshold 3", sq, sq, 3, nil,
			[]error{strassen.ErrInvalidThreshold, strassen.ErrInvalidArgument}},
		{"threshold 0", sq, sq, 0, nil,
			[]error{strassen.ErrInvalidThreshold, strassen.ErrInvalidArgument}},
		{"threshold -4", sq, sq, -4, nil,
			[]error{strassen.ErrInvalidThreshold}},
		{"nil lhs", nil, sq, 2, nil, []error{matrix.ErrNilMatrix}},
		{"typed nil rhs", sq, typedNil, 2, nil, []error{matrix.ErrNilMatrix}},
		{"too large", RandDense(t, 5, 5, 4), RandDense(t, 5, 5, 5), 2,
			[]strassen.Option{strassen.WithMaxPaddedSize(4)},
			[]error{strassen.ErrSizeTooLarge, strassen.ErrInvalidArgument}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := strassen.Multiply(tc.a, tc.b, tc.threshold, tc.opts...)
			require.Error(t, err)
			require.Nil(t, got)
			for _, target := range tc.want {
				require.Truef(t, errors.Is(err, target), "errors.Is(%v, %v)", err, target)
			}
		})
	}

	// Shape errors are reported before threshold errors.
	_, err := strassen.Multiply(a45, b33, 3)
	require.ErrorIs(t, err, strassen.ErrIncompatibleShapes)
	require.NotErrorIs(t, err, strassen.ErrInvalidThreshold)
}

// TestMultiply_MaxPaddedSizeBoundary accepts a size equal to the cap.
func TestMultiply_MaxPaddedSizeBoundary(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 4, 3, 1)
	b := RandDense(t, 3, 4, 2)
	_, err := strassen.Multiply(a, b, 2, strassen.WithMaxPaddedSize(4))
	require.NoError(t, err)
}

// TestMultiply_InputsUntouched ensures operands are only read.
func TestMultiply_InputsUntouched(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 16, 16, 8)
	b := RandDense(t, 16, 16, 9)
	aRows, bRows := a.ToRows(), b.ToRows()

	_, err := strassen.Multiply(a, b, 2, strassen.WithParallelDepth(2))
	require.NoError(t, err)
	require.Equal(t, aRows, a.ToRows())
	require.Equal(t, bRows, b.ToRows())
}

// TestMultiply_GenericOperands checks that operands hidden behind a plain
// Matrix produce the same bits as Dense operands and views.
func TestMultiply_GenericOperands(t *testing.T) {
	t.Parallel()

	base := RandDense(t, 20, 20, 12)
	a, err := base.View(0, 0, 16, 11)
	require.NoError(t, err)
	b, err := base.View(4, 4, 11, 13)
	require.NoError(t, err)

	viaViews, err := strassen.Multiply(a, b, 4)
	require.NoError(t, err)
	viaHidden, err := strassen.Multiply(hide{a}, hide{b}, 4)
	require.NoError(t, err)
	viaCopies, err := strassen.Multiply(a.Clone(), b.Clone(), 4)
	require.NoError(t, err)

	RequireIdentical(t, viaViews, viaHidden)
	RequireIdentical(t, viaViews, viaCopies)

	// Square power-of-two operands skip the padding copy on both paths.
	sq := RandDense(t, 16, 16, 13)
	x, err := strassen.Multiply(sq, sq, 4)
	require.NoError(t, err)
	y, err := strassen.Multiply(hide{sq}, hide{sq}, 4)
	require.NoError(t, err)
	RequireIdentical(t, x, y)
}

// TestMultiply_ParallelMatchesSequential requires bit-for-bit identical results.
func TestMultiply_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 70, 50, 21)
	b := RandDense(t, 50, 90, 22)

	seq, err := strassen.Multiply(a, b, 4)
	require.NoError(t, err)

	for _, tc := range []struct {
		depth, limit int
	}{
		{1, 0},
		{2, 0},
		{3, 2},
		{10, 1},
	} {
		tc := tc
		t.Run(fmt.Sprintf("depth=%d,limit=%d", tc.depth, tc.limit), func(t *testing.T) {
			par, err := strassen.Multiply(a, b, 4,
				strassen.WithParallelDepth(tc.depth),
				strassen.WithMaxGoroutines(tc.limit))
			require.NoError(t, err)
			RequireIdentical(t, seq, par)
		})
	}
}

// TestStats_SevenProductsEighteenAdditions checks the per-level operation
// structure: an 8×8 product with threshold 2 recurses twice.
func TestStats_SevenProductsEighteenAdditions(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 8, 8, 1)
	b := RandDense(t, 8, 8, 2)

	var st strassen.Stats
	_, err := strassen.Multiply(a, b, 2, strassen.WithStats(&st))
	require.NoError(t, err)

	require.Equal(t, 2, st.Levels())
	require.Equal(t, uint64(1+7), st.RecursiveCalls())
	require.Equal(t, 7*st.RecursiveCalls(), st.SubProducts())
	require.Equal(t, uint64(7*7), st.BaseCalls())
	require.Equal(t, 18*st.RecursiveCalls(), st.Additions())

	// Parallel recursion updates the same counters.
	st.Reset()
	require.Zero(t, st.RecursiveCalls())
	_, err = strassen.Multiply(a, b, 2, strassen.WithStats(&st), strassen.WithParallelDepth(2))
	require.NoError(t, err)
	require.Equal(t, 2, st.Levels())
	require.Equal(t, uint64(8), st.RecursiveCalls())
	require.Equal(t, uint64(144), st.Additions())
}

// TestStats_Levels checks depth = log2(padded/threshold).
func TestStats_Levels(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n, threshold, levels int
	}{
		{64, 64, 0},
		{64, 32, 1},
		{64, 4, 4},
		{33, 16, 2}, // padded to 64
		{1, 1, 0},
	} {
		var st strassen.Stats
		a := RandDense(t, tc.n, tc.n, int64(tc.n))
		_, err := strassen.Multiply(a, a, tc.threshold, strassen.WithStats(&st))
		require.NoError(t, err)
		require.Equalf(t, tc.levels, st.Levels(), "n=%d threshold=%d", tc.n, tc.threshold)
	}
}

// TestMultiplier_Reuse checks the validated, reusable form.
func TestMultiplier_Reuse(t *testing.T) {
	t.Parallel()

	_, err := strassen.New(6)
	require.ErrorIs(t, err, strassen.ErrInvalidThreshold)

	mul, err := strassen.New(4, strassen.WithParallelDepth(1))
	require.NoError(t, err)
	require.Equal(t, 4, mul.Threshold())

	for seed := int64(0); seed < 3; seed++ {
		a := RandDense(t, 9, 10, seed)
		b := RandDense(t, 10, 11, seed+100)
		got, err := mul.Multiply(a, b)
		require.NoError(t, err)
		want, err := strassen.Multiply(a, b, 4)
		require.NoError(t, err)
		RequireIdentical(t, want, got)
	}

	_, err = mul.Multiply(RandDense(t, 2, 3, 1), RandDense(t, 2, 3, 2))
	require.ErrorIs(t, err, strassen.ErrIncompatibleShapes)
}
