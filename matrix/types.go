// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface and the internal row accessor
// used by kernels to unlock contiguous fast paths.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// rowSlicer is implemented by the package's own storage types (*Dense and
// *MatrixView). row(i) returns the live, contiguous backing slice of row i
// (length == Cols()); writes go straight into storage.
//
// Kernels type-assert to rowSlicer to replace per-element At/Set with tight
// slice loops. Custom Matrix implementations always take the generic path.
type rowSlicer interface {
	Matrix
	row(i int) []float64
}

// Compile-time assertions.
var (
	_ rowSlicer = (*Dense)(nil)
	_ rowSlicer = (*MatrixView)(nil)
)
