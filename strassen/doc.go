// Package strassen multiplies dense float64 matrices with Strassen's
// divide-and-conquer algorithm.
//
// What & Why:
//
//	The classical product of two n×n matrices needs n³ scalar
//	multiplications. Strassen's scheme splits each operand into four
//	quadrants and forms the product from seven half-size products instead
//	of eight, paying 18 half-size additions/subtractions per level:
//
//	  M1 = (A11 + A22)(B11 + B22)
//	  M2 = (A21 + A22) B11
//	  M3 = A11 (B12 − B22)
//	  M4 = A22 (B21 − B11)
//	  M5 = (A11 + A12) B22
//	  M6 = (A21 − A11)(B11 + B12)
//	  M7 = (A12 − A22)(B21 + B22)
//
//	  C11 = M1 + M4 − M5 + M7    C12 = M3 + M5
//	  C21 = M2 + M4              C22 = M1 − M2 + M3 + M6
//
//	which gives O(n^log2(7)) ≈ O(n^2.807) multiplications.
//
// Padding:
//
//	Multiply accepts any compatible shapes (m×k times k×n). Both operands
//	are embedded top-left into zero matrices whose side is the smallest
//	power of two ≥ max(m, k, n); the m×n top-left block of the padded
//	product is returned. Zero padding contributes nothing to that block.
//
// Threshold:
//
//	Recursion stops once the working side is ≤ threshold, where the
//	classical product (matrix.Mul) takes over. The threshold must be a
//	positive power of two so every level above it splits evenly.
//	The result is mathematically independent of the threshold; only
//	floating-point rounding differs.
//
// Concurrency:
//
//	Sequential by default. WithParallelDepth(d) computes the seven
//	sub-products of the top d levels concurrently (errgroup fork-join).
//	Each product is computed exactly as in the sequential path, so the
//	result is bit-for-bit identical.
//
// Errors:
//
//	ErrIncompatibleShapes and ErrInvalidThreshold both match
//	ErrInvalidArgument via errors.Is. ErrSizeTooLarge guards the padded
//	allocation. Nil operands surface matrix.ErrNilMatrix.
//
// Example:
//
//	c, err := strassen.Multiply(a, b, 64)
//	if err != nil { ... }
package strassen
