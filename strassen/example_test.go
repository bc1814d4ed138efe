package strassen_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// ExampleMultiply multiplies a 2×3 by a 3×2 matrix; both are padded to 4×4
// internally and the 2×2 result is cropped back out.
func ExampleMultiply() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := strassen.Multiply(a, b, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleMultiply_errors shows the two invalid-input conditions.
func ExampleMultiply_errors() {
	a, _ := matrix.NewDense(4, 5)
	b, _ := matrix.NewDense(3, 3)
	_, err := strassen.Multiply(a, b, 2)
	fmt.Println(errors.Is(err, strassen.ErrIncompatibleShapes))

	sq, _ := matrix.NewDense(4, 4)
	_, err = strassen.Multiply(sq, sq, 3)
	fmt.Println(errors.Is(err, strassen.ErrInvalidThreshold))
	fmt.Println(errors.Is(err, strassen.ErrInvalidArgument))

	// Output:
	// true
	// true
	// true
}

// ExampleWithStats counts the work done by one recursion level.
func ExampleWithStats() {
	a, _ := matrix.NewIdentity(4)

	var st strassen.Stats
	_, _ = strassen.Multiply(a, a, 2, strassen.WithStats(&st))
	fmt.Println("levels:", st.Levels())
	fmt.Println("sub-products:", st.SubProducts())
	fmt.Println("additions:", st.Additions())

	// Output:
	// levels: 1
	// sub-products: 7
	// additions: 18
}
