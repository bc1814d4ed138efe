// SPDX-License-Identifier: MIT
// Package strassen_test contains shared fixtures for the Strassen tests.

package strassen_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

// hide WRAPS any Matrix to hide its concrete type (forces the generic paths).
type hide struct{ matrix.Matrix }

// RandDense RETURNS an r×c Dense filled with deterministic U(-1,1) values.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, d.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }))

	return d
}

// IntDense RETURNS an r×c Dense of small integers in [-9, 9]; products of
// such matrices are exact in float64 at the sizes used here.
func IntDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, d.Apply(func(_, _ int, _ float64) float64 { return float64(rng.Intn(19) - 9) }))

	return d
}

// MustFrom BUILDS a Dense from literal rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// Standard RETURNS a × b via the classical product.
func Standard(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

// RequireRowsClose COMPARES two matrices row by row within atol using go-cmp.
func RequireRowsClose(t testing.TB, want, got *matrix.Dense, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want.ToRows(), got.ToRows(), cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("matrices differ (-want +got):\n%s", diff)
	}
}

// RequireIdentical ASSERTS bit-for-bit equality.
func RequireIdentical(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.ToRows(), got.ToRows())
}
