package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/georoute/matrix"
)

// ExampleNewDenseFromRows builds a small directed gain table and reads an edge.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 12.5, -3},
		{4, 0, 8},
		{7.25, 1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := m.At(2, 0)
	fmt.Println("gain 3->1:", v)
	fmt.Println("square:", matrix.ValidateSquare(m, 3) == nil)

	// Output:
	// gain 3->1: 7.25
	// square: true
}
