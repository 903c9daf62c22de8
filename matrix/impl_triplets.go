// SPDX-License-Identifier: MIT

// Package matrix - coordinate (COO) builder for Sparse.
//
// Triplets collects (row, col, value) entries in any order and compresses
// them into CSR with ToSparse. Duplicate coordinates are summed, which makes
// it the natural ingestion path for assembled operators.

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

const ctxTriplets = "Triplets"

// Triplets is an append-only coordinate list with a fixed shape.
type Triplets struct {
	r, c           int
	entries        []Triplet
	validateNaNInf bool
}

// NewTriplets returns an empty builder for a rows×cols matrix.
// WithReserve(n) preallocates room for n entries.
// Errors: ErrInvalidDimensions for non-positive shapes.
func NewTriplets(rows, cols int, opts ...Option) (*Triplets, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Triplets{
		r:              rows,
		c:              cols,
		entries:        make([]Triplet, 0, o.reserve),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Append records v at (i, j).
//
// Errors:
//   - ErrOutOfRange on invalid indices.
//   - ErrNaNInf when v is not finite and the policy is enabled.
func (t *Triplets) Append(i, j int, v float64) error {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return fmt.Errorf("%s.Append(%d,%d): %w", ctxTriplets, i, j, ErrOutOfRange)
	}
	if t.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s.Append(%d,%d): %w", ctxTriplets, i, j, ErrNaNInf)
	}
	t.entries = append(t.entries, Triplet{Row: i, Col: j, Val: v})

	return nil
}

// Len returns the number of appended entries (duplicates counted).
func (t *Triplets) Len() int { return len(t.entries) }

// ToSparse compresses the entries into CSR. Entries are ordered row-major,
// duplicates are summed into a single stored entry.
// Complexity: O(k log k) for k appended entries.
func (t *Triplets) ToSparse() (*Sparse, error) {
	sorted := slices.Clone(t.entries)
	slices.SortStableFunc(sorted, func(a, b Triplet) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	var opts []Option
	if !t.validateNaNInf {
		opts = append(opts, WithNoValidateNaNInf())
	}
	s, err := NewSparse(t.r, t.c, append(opts, WithReserve(len(sorted)))...)
	if err != nil {
		return nil, err
	}
	prevRow, prevCol := -1, -1
	for _, e := range sorted {
		if e.Row == prevRow && e.Col == prevCol {
			s.data[len(s.data)-1] += e.Val
			continue
		}
		prevRow, prevCol = e.Row, e.Col
		s.indices = append(s.indices, e.Col)
		s.data = append(s.data, e.Val)
		s.indptr[e.Row+1]++
	}
	// indptr holds per-row counts at [i+1]; prefix-sum into offsets.
	for i := 0; i < t.r; i++ {
		s.indptr[i+1] += s.indptr[i]
	}

	return s, nil
}
