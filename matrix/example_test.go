package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mcmctidy/matrix"
)

// ExampleDense_SelectCols keeps parameters 2 and 0 of a 3-iteration chain block.
func ExampleDense_SelectCols() {
	m, err := matrix.NewDense(3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	draws := [][]float64{
		{0.1, 10, -1},
		{0.2, 20, -2},
		{0.3, 30, -3},
	}
	for i, row := range draws {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				fmt.Println("error:", err)

				return
			}
		}
	}

	sub, err := m.SelectCols([]int{2, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for j := 0; j < sub.Cols(); j++ {
		col, _ := sub.AppendCol(nil, j)
		fmt.Println(col)
	}
	// Output:
	// [-1 -2 -3]
	// [0.1 0.2 0.3]
}
