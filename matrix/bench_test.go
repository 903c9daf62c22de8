// Package matrix_test provides benchmarks for the sparse kernels and the
// assignment primitives, using deterministic random operands.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsebench/matrix"
)

// benchSizes are the matrix dimensions to benchmark.
var benchSizes = []int{1_000, 30_000, 300_000}

// sinks to defeat dead-code elimination
var (
	sinkS *matrix.Sparse
	sinkB bool
)

// benchOperands draws a diagonal and a sparse operand from a fixed seed.
func benchOperands(b *testing.B, n int) (*matrix.Diagonal, *matrix.Sparse) {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	a, err := matrix.RandomDiagonal(n, rng)
	if err != nil {
		b.Fatal(err)
	}
	s, err := matrix.RandomSparseDiagonal(n, rng)
	if err != nil {
		b.Fatal(err)
	}

	return a, s
}

func BenchmarkMulDiagSparse_Fresh(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			a, s := benchOperands(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := matrix.MulDiagSparse(a, s)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = c
			}
		})
	}
}

func BenchmarkMulDiagSparse_Into(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			a, s := benchOperands(b, n)
			c := &matrix.Sparse{}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MulDiagSparseInto(c, a, s); err != nil {
					b.Fatal(err)
				}
			}
			sinkS = c
		})
	}
}

func BenchmarkMulDiagSparse_InPlace(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			a, s := benchOperands(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MulDiagSparseInto(s, a, s); err != nil {
					b.Fatal(err)
				}
			}
			sinkS = s
		})
	}
}

func BenchmarkSparseCopyFrom(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			_, s := benchOperands(b, n)
			dst := &matrix.Sparse{}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := dst.CopyFrom(s); err != nil {
					b.Fatal(err)
				}
			}
			sinkS = dst
		})
	}
}

func BenchmarkSparseSwap(b *testing.B) {
	b.ReportAllocs()
	_, s := benchOperands(b, benchSizes[0])
	other := s.CloneSparse()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Swap(other); err != nil {
			b.Fatal(err)
		}
	}
	sinkS = s
}

func BenchmarkMulSparseSparse(b *testing.B) {
	for _, n := range benchSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			x := randomSparse(b, n, 4, 11)
			y := randomSparse(b, n, 4, 12)
			c := &matrix.Sparse{}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MulSparseSparseInto(c, x, y); err != nil {
					b.Fatal(err)
				}
			}
			sinkS = c
		})
	}
}

func BenchmarkEqualSparse(b *testing.B) {
	b.ReportAllocs()
	_, s := benchOperands(b, benchSizes[1])
	t := s.CloneSparse()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := matrix.Equal(s, t)
		if err != nil {
			b.Fatal(err)
		}
		sinkB = ok
	}
}
