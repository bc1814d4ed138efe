// Package matrix provides the dense float64 matrix model used by the
// Strassen multiplier and its benchmark harness.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) with safe,
//     error-returning accessors.
//   - Dense, a row-major implementation backed by one flat slice.
//   - MatrixView, a no-copy rectangular window into a Dense that is itself a
//     Matrix, so sub-blocks can be fed to any kernel without copying.
//   - Block / SetBlock for copy-based sub-block extraction and assignment.
//   - Add, Sub, Mul (standard cubic product), Transpose, Scale,
//     FrobeniusNorm, DiffNorm, AllClose.
//
// Every kernel validates its operands, returns sentinel errors (errors.go)
// wrapped with an operation tag, allocates a fresh result and never mutates
// its inputs. Loop orders are fixed, so results are reproducible bit for bit.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewIdentity(2)
//	c, err := matrix.Mul(a, b) // c == a
//
// See example_test.go for more.
package matrix
