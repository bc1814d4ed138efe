// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidConfig indicates an unusable Config or a malformed variable.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrMismatch indicates that a Strassen result differs from the classical
	// product by more than the accepted tolerance.
	ErrMismatch = errors.New("bench: result mismatch")
)
