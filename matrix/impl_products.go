// SPDX-License-Identifier: MIT

// Package matrix - products involving Sparse operands.
//
// Purpose:
//   - Diagonal × Sparse (row scaling) and Sparse × Diagonal (column scaling):
//     the result keeps the sparsity pattern of the sparse operand.
//   - Sparse × Sparse via Gustavson's row-by-row accumulation.
//   - Every kernel has a fresh-allocating form (MulX) and a destination form
//     (MulXInto) that reuses the destination's buffers. The destination may
//     alias an operand.
//
// Determinism:
//   - Fixed i→k loop orders; columns of every output row are sorted.

package matrix

import (
	"fmt"
	"slices"
)

const (
	opMulDiagSparse   = "MulDiagSparse"
	opMulSparseDiag   = "MulSparseDiag"
	opMulSparseSparse = "MulSparseSparse"
)

// matrixErrorf wraps err with an operation tag, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulDiagSparse returns a new Sparse holding a × b.
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when a.Dim() != b.Rows().
//
// Complexity:
//   - Time O(nnz(b) + rows), Space O(nnz(b) + rows).
func MulDiagSparse(a *Diagonal, b *Sparse) (*Sparse, error) {
	out := &Sparse{}
	if err := MulDiagSparseInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// MulDiagSparseInto stores a × b into dst, reusing dst's buffers.
// dst == b is legal and scales b in place without touching its structure.
//
// Errors:
//   - ErrNilMatrix when dst, a or b is nil.
//   - ErrDimensionMismatch when a.Dim() != b.Rows().
func MulDiagSparseInto(dst *Sparse, a *Diagonal, b *Sparse) error {
	if dst == nil || a == nil || b == nil {
		return matrixErrorf(opMulDiagSparse, ErrNilMatrix)
	}
	if a.n != b.r {
		return matrixErrorf(opMulDiagSparse, ErrDimensionMismatch)
	}

	if dst == b {
		// In place: only values change.
		for i := 0; i < b.r; i++ {
			di := a.d[i]
			for k := b.indptr[i]; k < b.indptr[i+1]; k++ {
				b.data[k] *= di
			}
		}
		return nil
	}

	nnz := b.NNZ()
	dst.reshape(b.r, b.c, nnz)
	copy(dst.indptr, b.indptr)
	copy(dst.indices, b.indices[:nnz])
	for i := 0; i < b.r; i++ {
		di := a.d[i]
		for k := b.indptr[i]; k < b.indptr[i+1]; k++ {
			dst.data[k] = di * b.data[k]
		}
	}
	dst.validateNaNInf = b.validateNaNInf

	return nil
}

// MulSparseDiag returns a new Sparse holding b × a (column scaling).
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when b.Cols() != a.Dim().
func MulSparseDiag(b *Sparse, a *Diagonal) (*Sparse, error) {
	out := &Sparse{}
	if err := MulSparseDiagInto(out, b, a); err != nil {
		return nil, err
	}

	return out, nil
}

// MulSparseDiagInto stores b × a into dst; dst == b is legal.
func MulSparseDiagInto(dst *Sparse, b *Sparse, a *Diagonal) error {
	if dst == nil || a == nil || b == nil {
		return matrixErrorf(opMulSparseDiag, ErrNilMatrix)
	}
	if b.c != a.n {
		return matrixErrorf(opMulSparseDiag, ErrDimensionMismatch)
	}

	nnz := b.NNZ()
	if dst == b {
		for k := 0; k < nnz; k++ {
			b.data[k] *= a.d[b.indices[k]]
		}
		return nil
	}

	dst.reshape(b.r, b.c, nnz)
	copy(dst.indptr, b.indptr)
	copy(dst.indices, b.indices[:nnz])
	for k := 0; k < nnz; k++ {
		dst.data[k] = b.data[k] * a.d[b.indices[k]]
	}
	dst.validateNaNInf = b.validateNaNInf

	return nil
}

// MulSparseSparse returns a new Sparse holding a × b.
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity:
//   - Time O(flops + Σ k_i log k_i) where k_i is the output row length,
//     Space O(nnz(out) + cols) for the dense accumulator.
func MulSparseSparse(a, b *Sparse) (*Sparse, error) {
	out := &Sparse{}
	if err := MulSparseSparseInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// MulSparseSparseInto stores a × b into dst. When dst aliases a or b the
// product is formed in a temporary and then moved into dst.
func MulSparseSparseInto(dst, a, b *Sparse) error {
	if dst == nil || a == nil || b == nil {
		return matrixErrorf(opMulSparseSparse, ErrNilMatrix)
	}
	if a.c != b.r {
		return matrixErrorf(opMulSparseSparse, ErrDimensionMismatch)
	}
	if dst == a || dst == b {
		tmp := &Sparse{}
		gustavson(tmp, a, b)
		*dst = *tmp
		return nil
	}
	gustavson(dst, a, b)

	return nil
}

// gustavson computes dst = a × b row by row with a dense accumulator and a
// marker array; dst must not alias a or b.
func gustavson(dst, a, b *Sparse) {
	rows, cols := a.r, b.c
	acc := make([]float64, cols)
	mark := make([]int, cols)
	for j := range mark {
		mark[j] = -1
	}

	indptr := resize(dst.indptr, rows+1)
	indices := dst.indices[:0]
	data := dst.data[:0]
	indptr[0] = 0
	for i := 0; i < rows; i++ {
		start := len(indices)
		for ka := a.indptr[i]; ka < a.indptr[i+1]; ka++ {
			k, av := a.indices[ka], a.data[ka]
			for kb := b.indptr[k]; kb < b.indptr[k+1]; kb++ {
				j := b.indices[kb]
				if mark[j] != i {
					mark[j] = i
					acc[j] = 0
					indices = append(indices, j)
				}
				acc[j] += av * b.data[kb]
			}
		}
		slices.Sort(indices[start:])
		for _, j := range indices[start:] {
			data = append(data, acc[j])
		}
		indptr[i+1] = len(indices)
	}

	dst.r, dst.c = rows, cols
	dst.indptr, dst.indices, dst.data = indptr, indices, data
	dst.validateNaNInf = a.validateNaNInf
}
