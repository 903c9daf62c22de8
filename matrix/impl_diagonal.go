// SPDX-License-Identifier: MIT

// Package matrix - Diagonal storage.
//
// Purpose:
//   - Represent an N×N diagonal matrix by its N diagonal values only.
//   - Keep the Matrix contract: At returns 0 off the diagonal, Set accepts
//     zero off the diagonal (a no-op) and rejects anything else.
//
// Complexity quicksheet:
//   - NewDiagonal: O(n); At/Set: O(1); Clone: O(n); ToDense: O(n²).

package matrix

import "fmt"

const ctxDiagonal = "Diagonal"

// diagErrorf wraps an error with Diagonal method context.
func diagErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", ctxDiagonal, method, row, col, err)
}

// Diagonal is a square matrix whose only state is the ordered sequence of
// its diagonal values.
type Diagonal struct {
	n              int       // dimension (rows == cols == n)
	d              []float64 // diagonal values, len == n
	validateNaNInf bool      // numeric guard for Set
}

var _ Matrix = (*Diagonal)(nil)

// NewDiagonal returns an n×n diagonal matrix with all values zero.
// Errors: ErrInvalidDimensions when n <= 0.
func NewDiagonal(n int, opts ...Option) (*Diagonal, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Diagonal{n: n, d: make([]float64, n), validateNaNInf: o.validateNaNInf}, nil
}

// NewDiagonalFrom builds a diagonal matrix from a copy of vals.
//
// Errors:
//   - ErrInvalidDimensions when vals is empty.
//   - ErrNaNInf when a value is not finite and the policy is enabled.
func NewDiagonalFrom(vals []float64, opts ...Option) (*Diagonal, error) {
	m, err := NewDiagonal(len(vals), opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if m.validateNaNInf && isNonFinite(v) {
			return nil, diagErrorf(ctxSet, i, i, ErrNaNInf)
		}
		m.d[i] = v
	}

	return m, nil
}

// Rows returns n.
func (m *Diagonal) Rows() int { return m.n }

// Cols returns n.
func (m *Diagonal) Cols() int { return m.n }

// Dim returns the dimension of the square matrix.
func (m *Diagonal) Dim() int { return m.n }

// Diag returns the i-th diagonal value without bounds wrapping; it panics on
// an invalid index like a slice access would.
func (m *Diagonal) Diag(i int) float64 { return m.d[i] }

// Values returns a copy of the diagonal values.
func (m *Diagonal) Values() []float64 {
	out := make([]float64, m.n)
	copy(out, m.d)

	return out
}

// At returns d[i] on the diagonal and 0 elsewhere.
// Errors: ErrOutOfRange on invalid indices.
func (m *Diagonal) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, diagErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	if i != j {
		return 0, nil
	}

	return m.d[i], nil
}

// Set writes v at (i, j). Off the diagonal only v == 0 is accepted.
//
// Errors:
//   - ErrOutOfRange on invalid indices.
//   - ErrNaNInf when v is not finite and the policy is enabled.
//   - ErrOffDiagonal when i != j and v != 0.
func (m *Diagonal) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return diagErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return diagErrorf(ctxSet, i, j, ErrNaNInf)
	}
	if i != j {
		if v != 0 {
			return diagErrorf(ctxSet, i, j, ErrOffDiagonal)
		}
		return nil
	}
	m.d[i] = v

	return nil
}

// Clone returns an independent copy.
func (m *Diagonal) Clone() Matrix {
	return &Diagonal{n: m.n, d: m.Values(), validateNaNInf: m.validateNaNInf}
}

// ToDense materializes the diagonal into an n×n Dense.
// Complexity: O(n²) memory; intended for small shapes.
func (m *Diagonal) ToDense() (*Dense, error) {
	out, err := NewDense(m.n, m.n)
	if err != nil {
		return nil, err
	}
	for i, v := range m.d {
		out.data[i*m.n+i] = v
	}

	return out, nil
}
