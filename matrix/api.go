// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import "fmt"

// CloneMatrix returns a structural clone of m (same concrete type).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	if isNilMatrix(m) {
		return nil
	}

	return m.Clone()
}

// ToDense materializes any Matrix into a Dense of the same shape.
// Diagonal and Sparse use their structural fast paths; anything else is
// copied element by element in i→j order.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - Any error surfaced by At on foreign implementations.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	switch v := m.(type) {
	case *Dense:
		return v.Clone().(*Dense), nil
	case *Diagonal:
		return v.ToDense()
	case *Sparse:
		return v.ToDense()
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToDense", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// See ewAllClose for the policy on tolerances and fast paths.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equalish reports whether |a-b| ≤ eps holds elementwise, where eps is
// DefaultEpsilon unless overridden with WithEpsilon. Other options are ignored.
func Equalish(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}

// Equal reports exact elementwise equality (stored zeros equal absent entries).
func Equal(a, b Matrix) (bool, error) {
	return ewAllClose(a, b, 0, 0)
}
