// SPDX-License-Identifier: MIT
// Package strassen: sentinel errors.
//
// Policy:
//   - Sentinels are compared with errors.Is; never by string.
//   - Context (operation, shapes, threshold) is attached at the detection site.
//   - Invalid input never panics; only nonsensical option constructor
//     arguments do (programmer error, see options.go).

package strassen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for every rejected input of Multiply.
	ErrInvalidArgument = errors.New("strassen: invalid argument")

	// ErrIncompatibleShapes indicates cols(A) != rows(B).
	// Errors carrying it also match matrix.ErrDimensionMismatch.
	ErrIncompatibleShapes = fmt.Errorf("%w: incompatible shapes", ErrInvalidArgument)

	// ErrInvalidThreshold indicates a threshold that is not a positive power of two.
	ErrInvalidThreshold = fmt.Errorf("%w: threshold must be a positive power of two", ErrInvalidArgument)

	// ErrSizeTooLarge indicates that the padded working side exceeds the configured cap.
	ErrSizeTooLarge = fmt.Errorf("%w: padded size too large", ErrInvalidArgument)
)

// strassenErrorf tags err with the operation name.
func strassenErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
