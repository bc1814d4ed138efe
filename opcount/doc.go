// Package opcount computes theoretical scalar operation counts for the
// classical and Strassen matrix products.
//
// The counts are closed-form recurrences used for reporting only; they do
// not run any multiplication.
//
//	Standard(n):      n³ multiplications, n³ − n² additions
//	Strassen(n, t):   mult(n) = 7·mult(n/2)
//	                  add(n)  = 7·add(n/2) + 18·(n/2)²
//	                  and Standard(n) once n ≤ t.
//
// Counts are exact uint64 values. A size whose padding or counts leave that
// range returns ErrSizeTooLarge or ErrOverflow instead of a wrapped number.
package opcount
