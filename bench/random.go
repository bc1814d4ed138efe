// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/strassen/matrix"
)

// RandomMatrix returns a rows×cols matrix with entries drawn uniformly from
// [-1, 1) using rng. The same rng state always yields the same matrix.
func RandomMatrix(rng *rand.Rand, rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}
	if err = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }); err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}

	return m, nil
}
