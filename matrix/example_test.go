package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/matrix"
)

// ExampleMulDiagSparse scales the rows of a sparse matrix by a diagonal.
func ExampleMulDiagSparse() {
	a, _ := matrix.NewDiagonalFrom([]float64{1, 2, 3, 4})
	b, _ := matrix.SparseDiagonalFrom([]float64{5, 6, 7, 8})

	c, err := matrix.MulDiagSparse(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// Sparse 4x4 nnz=4
	// (0,0) 5
	// (1,1) 12
	// (2,2) 21
	// (3,3) 32
}

// ExampleSparse_Swap exchanges two matrices without copying entries.
func ExampleSparse_Swap() {
	b, _ := matrix.SparseDiagonalFrom([]float64{1, 1})
	tmp, _ := matrix.SparseDiagonalFrom([]float64{2, 3, 4})

	_ = b.Swap(tmp)
	fmt.Println(b.Rows(), b.NNZ(), tmp.Rows())

	// Output:
	// 3 3 2
}
