// Package strassen is the umbrella for a small, dependency-light toolkit
// that multiplies dense float64 matrices with Strassen's algorithm and
// measures it against the classical product.
//
// 🚀 What is in the box?
//
//	• Dense matrices: safe accessors, no-copy views, block copy/assign
//	• Kernels: Add, Sub, Mul, Transpose, Scale, Frobenius norm, AllClose
//	• Strassen: padding to powers of two, threshold fallback, opt-in
//	  parallel fork-join of the seven sub-products
//	• Operation counts: closed recurrences for reporting
//	• Benchmark harness and CLI with env/.env configuration
//
// ✨ Guarantees
//
//   - Any compatible shapes: m×k times k×n, the result is exactly m×n
//   - Deterministic: fixed loop orders, parallel results are bit-identical
//   - Sentinel errors for every invalid input, no panics on user data
//
// Layout:
//
//	matrix/             Matrix, Dense, MatrixView, kernels, validators
//	strassen/           Multiply, Multiplier, options, recursion stats
//	opcount/            theoretical multiplication/addition counts
//	bench/              timing harness, config loader, text report
//	cmd/strassenbench/  command-line front end
//	examples/           runnable demo
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFrom([][]float64{{5, 6}, {7, 8}})
//	c, err := strassen.Multiply(a, b, 64)
//
//	go get github.com/katalvlaran/strassen/strassen
package strassen
