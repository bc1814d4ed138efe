// SPDX-License-Identifier: MIT

package opcount

import "errors"

var (
	// ErrInvalidThreshold indicates a threshold that is not a positive power of two.
	ErrInvalidThreshold = errors.New("opcount: threshold must be a positive power of two")

	// ErrInvalidSize indicates a non-positive matrix dimension.
	ErrInvalidSize = errors.New("opcount: size must be > 0")

	// ErrSizeTooLarge indicates a size whose power-of-two padding overflows int.
	ErrSizeTooLarge = errors.New("opcount: padded size overflows int")

	// ErrOverflow indicates a count that does not fit in uint64.
	ErrOverflow = errors.New("opcount: count overflows uint64")
)
