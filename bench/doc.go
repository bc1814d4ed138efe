// Package bench times the classical product against Strassen's algorithm
// and reports the results.
//
// A run draws two random size×size matrices with entries in [-1, 1), times
// matrix.Mul once per repeat, then times strassen.Multiply for every
// configured threshold. For each threshold it records the best wall time,
// the Frobenius norm of the difference to the classical result and the
// theoretical operation counts from package opcount.
//
// Configuration comes from DefaultConfig, STRASSEN_* environment variables
// and an optional .env file (see LoadConfig); the strassenbench command
// layers its flags on top.
package bench
