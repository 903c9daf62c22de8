// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (CSR) & safe accessors.
//
// Purpose:
//   - Store only explicit entries in compressed-sparse-row form:
//     indptr (len rows+1), indices and data (len nnz). Row i owns the
//     half-open range [indptr[i], indptr[i+1]) with strictly increasing
//     column indices.
//   - Offer the three assignment primitives the benchmark idioms are built
//     from: product-into (kernels in impl_products.go), CopyFrom and Swap.
//   - Keep the Matrix contract: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewSparse: O(rows); At: O(log k); Set: O(log k) update, O(nnz+rows) insert;
//     Clone/CopyFrom: O(nnz+rows); Swap: O(1).

package matrix

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

const (
	ctxSparse = "Sparse"
	ctxSwap   = "Swap"
)

// sparseErrorf wraps an error with Sparse method context and coordinates.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", ctxSparse, method, row, col, err)
}

// Sparse is a CSR matrix of float64 values.
// The zero value is an empty 0×0 matrix usable as a destination for the
// Into kernels and CopyFrom.
// Invariants: len(indptr) == r+1, indptr[0] == 0, indptr non-decreasing,
// len(indices) == len(data) == indptr[r], columns strictly increasing per row.
type Sparse struct {
	r, c           int
	indptr         []int
	indices        []int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse returns an empty rows×cols CSR matrix (no stored entries).
// WithReserve(nnz) preallocates room for nnz entries.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		indptr:         make([]int, rows+1),
		indices:        make([]int, 0, o.reserve),
		data:           make([]float64, 0, o.reserve),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSparseCSR adopts copies of raw CSR arrays after validating them.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrMalformedSparse when the arrays violate the CSR invariants.
//   - ErrNaNInf for non-finite values under the numeric policy.
func NewSparseCSR(rows, cols int, indptr, indices []int, data []float64, opts ...Option) (*Sparse, error) {
	s, err := NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	s.indptr = slices.Clone(indptr)
	s.indices = slices.Clone(indices)
	s.data = slices.Clone(data)
	if err = s.Validate(); err != nil {
		return nil, err
	}
	if s.validateNaNInf {
		for k, v := range s.data {
			if isNonFinite(v) {
				return nil, sparseErrorf(ctxSet, s.rowOf(k), s.indices[k], ErrNaNInf)
			}
		}
	}

	return s, nil
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (s *Sparse) NNZ() int {
	if len(s.indptr) == 0 {
		return 0
	}

	return s.indptr[s.r]
}

// RowNNZ returns the number of stored entries in row i.
// Errors: ErrOutOfRange on invalid i.
func (s *Sparse) RowNNZ(i int) (int, error) {
	if i < 0 || i >= s.r {
		return 0, sparseErrorf("RowNNZ", i, 0, ErrOutOfRange)
	}

	return s.indptr[i+1] - s.indptr[i], nil
}

// Validate checks the CSR invariants and returns ErrMalformedSparse (wrapped
// with the failing row) on the first violation.
// Complexity: O(rows + nnz).
func (s *Sparse) Validate() error {
	if len(s.indptr) != s.r+1 || s.indptr[0] != 0 {
		return fmt.Errorf("%s.Validate: indptr: %w", ctxSparse, ErrMalformedSparse)
	}
	nnz := s.indptr[s.r]
	if len(s.indices) != nnz || len(s.data) != nnz {
		return fmt.Errorf("%s.Validate: nnz=%d: %w", ctxSparse, nnz, ErrMalformedSparse)
	}
	for i := 0; i < s.r; i++ {
		lo, hi := s.indptr[i], s.indptr[i+1]
		if hi < lo || hi > nnz {
			return fmt.Errorf("%s.Validate: row %d: %w", ctxSparse, i, ErrMalformedSparse)
		}
		for k := lo; k < hi; k++ {
			j := s.indices[k]
			if j < 0 || j >= s.c || (k > lo && s.indices[k-1] >= j) {
				return fmt.Errorf("%s.Validate: row %d: %w", ctxSparse, i, ErrMalformedSparse)
			}
		}
	}

	return nil
}

// find locates column j in row i. It returns the absolute position where the
// entry lives (found) or would be inserted (not found).
func (s *Sparse) find(i, j int) (int, bool) {
	lo, hi := s.indptr[i], s.indptr[i+1]
	pos := lo + sort.SearchInts(s.indices[lo:hi], j)

	return pos, pos < hi && s.indices[pos] == j
}

// rowOf maps an absolute storage position back to its row (binary search on indptr).
func (s *Sparse) rowOf(k int) int {
	return sort.Search(s.r, func(i int) bool { return s.indptr[i+1] > k })
}

// At returns the stored value at (i, j), or 0 when nothing is stored there.
// Errors: ErrOutOfRange on invalid indices.
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, sparseErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	if pos, ok := s.find(i, j); ok {
		return s.data[pos], nil
	}

	return 0, nil
}

// Set writes v at (i, j). Existing entries are updated in place; a missing
// entry is inserted unless v == 0 (no structural change for zeros).
//
// Errors:
//   - ErrOutOfRange on invalid indices.
//   - ErrNaNInf when v is not finite and the policy is enabled.
func (s *Sparse) Set(i, j int, v float64) error {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return sparseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if s.validateNaNInf && isNonFinite(v) {
		return sparseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	pos, ok := s.find(i, j)
	if ok {
		s.data[pos] = v
		return nil
	}
	if v == 0 {
		return nil
	}
	s.indices = slices.Insert(s.indices, pos, j)
	s.data = slices.Insert(s.data, pos, v)
	for k := i + 1; k <= s.r; k++ {
		s.indptr[k]++
	}

	return nil
}

// Clone returns an independent deep copy.
func (s *Sparse) Clone() Matrix { return s.CloneSparse() }

// CloneSparse is Clone with the concrete return type.
func (s *Sparse) CloneSparse() *Sparse {
	return &Sparse{
		r:              s.r,
		c:              s.c,
		indptr:         slices.Clone(s.indptr),
		indices:        slices.Clone(s.indices),
		data:           slices.Clone(s.data),
		validateNaNInf: s.validateNaNInf,
	}
}

// CopyFrom makes s a deep copy of src, adopting its shape and reusing the
// receiver's buffers when their capacity suffices. s and src never share
// storage afterwards.
// Errors: ErrNilMatrix when src is nil.
func (s *Sparse) CopyFrom(src *Sparse) error {
	if src == nil {
		return fmt.Errorf("%s.%s: %w", ctxSparse, ctxCopyFrom, ErrNilMatrix)
	}
	if s == src {
		return nil
	}
	nnz := src.NNZ()
	s.reshape(src.r, src.c, nnz)
	if copy(s.indptr, src.indptr) == 0 {
		s.indptr[0] = 0 // src is the zero value
	}
	copy(s.indices, src.indices[:nnz])
	copy(s.data, src.data[:nnz])
	s.validateNaNInf = src.validateNaNInf

	return nil
}

// Swap exchanges the complete state (shape, storage, policy) of s and other
// in O(1) without copying entries.
// Errors: ErrNilMatrix when other is nil.
func (s *Sparse) Swap(other *Sparse) error {
	if other == nil {
		return fmt.Errorf("%s.%s: %w", ctxSparse, ctxSwap, ErrNilMatrix)
	}
	*s, *other = *other, *s

	return nil
}

// Reserve grows the entry buffers so that at least nnz entries fit without
// reallocation.
func (s *Sparse) Reserve(nnz int) {
	if extra := nnz - len(s.indices); extra > 0 {
		s.indices = slices.Grow(s.indices, extra)
		s.data = slices.Grow(s.data, extra)
	}
}

// Cap reports how many entries fit in the current buffers.
func (s *Sparse) Cap() int { return min(cap(s.indices), cap(s.data)) }

// reshape sets the shape and resizes the CSR arrays to hold nnz entries,
// reusing backing arrays when their capacity suffices. Contents are undefined
// afterwards; callers overwrite every slot.
func (s *Sparse) reshape(rows, cols, nnz int) {
	s.r, s.c = rows, cols
	s.indptr = resize(s.indptr, rows+1)
	s.indices = resize(s.indices, nnz)
	s.data = resize(s.data, nnz)
}

// resize returns buf[:n] when it fits, otherwise a fresh slice of length n.
func resize[T any](buf []T, n int) []T {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]T, n)
}

// Triplets lists the stored entries in row-major order.
func (s *Sparse) Triplets() []Triplet {
	out := make([]Triplet, 0, s.NNZ())
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			out = append(out, Triplet{Row: i, Col: s.indices[k], Val: s.data[k]})
		}
	}

	return out
}

// ToDense materializes s into a Dense of the same shape.
// Complexity: O(rows*cols) memory; intended for small shapes.
func (s *Sparse) ToDense() (*Dense, error) {
	out, err := NewDense(s.r, s.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			out.data[i*s.c+s.indices[k]] = s.data[k]
		}
	}

	return out, nil
}

// String renders a header and one "(i,j) v" line per stored entry.
func (s *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %dx%d nnz=%d\n", s.r, s.c, s.NNZ())
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			fmt.Fprintf(&sb, "(%d,%d) %g\n", i, s.indices[k], s.data[k])
		}
	}

	return sb.String()
}
