// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/matrix"
)

// workspace holds the operands and reused variables of one configuration.
// out points at whichever matrix the idiom's last step produced.
type workspace struct {
	a   *matrix.Diagonal
	s   *matrix.Sparse // sparse left operand (SparseAssign only)
	b   *matrix.Sparse
	c   *matrix.Sparse
	tmp *matrix.Sparse
	out *matrix.Sparse
}

// stepFunc performs one multiply-and-store of an idiom.
type stepFunc func(w *workspace) error

// newWorkspace prepares operands for id. b is owned by the workspace.
func newWorkspace(id Idiom, a *matrix.Diagonal, b *matrix.Sparse) (*workspace, error) {
	w := &workspace{a: a, b: b, c: &matrix.Sparse{}, tmp: &matrix.Sparse{}}
	if id == SparseAssign {
		s, err := matrix.SparseDiagonalFrom(a.Values())
		if err != nil {
			return nil, err
		}
		w.s = s
	}

	return w, nil
}

// stepFor returns the step of id; the lookup happens once, outside the timed loop.
func stepFor(id Idiom) (stepFunc, error) {
	switch id {
	case Fresh:
		return func(w *workspace) error {
			c, err := matrix.MulDiagSparse(w.a, w.b)
			w.out = c
			return err
		}, nil
	case Assign:
		return func(w *workspace) error {
			w.out = w.c
			return matrix.MulDiagSparseInto(w.c, w.a, w.b)
		}, nil
	case InPlace:
		return func(w *workspace) error {
			w.out = w.b
			return matrix.MulDiagSparseInto(w.b, w.a, w.b)
		}, nil
	case TempCopy:
		return func(w *workspace) error {
			w.out = w.b
			if err := matrix.MulDiagSparseInto(w.tmp, w.a, w.b); err != nil {
				return err
			}
			return w.b.CopyFrom(w.tmp)
		}, nil
	case TempSwap:
		return func(w *workspace) error {
			w.out = w.b
			if err := matrix.MulDiagSparseInto(w.tmp, w.a, w.b); err != nil {
				return err
			}
			return w.b.Swap(w.tmp)
		}, nil
	case FreshCopy:
		return func(w *workspace) error {
			w.out = w.b
			tmp, err := matrix.MulDiagSparse(w.a, w.b)
			if err != nil {
				return err
			}
			return w.b.CopyFrom(tmp)
		}, nil
	case FreshSwap:
		return func(w *workspace) error {
			w.out = w.b
			tmp, err := matrix.MulDiagSparse(w.a, w.b)
			if err != nil {
				return err
			}
			return w.b.Swap(tmp)
		}, nil
	case SparseAssign:
		return func(w *workspace) error {
			w.out = w.c
			return matrix.MulSparseSparseInto(w.c, w.s, w.b)
		}, nil
	}

	return nil, fmt.Errorf("%v: %w", id, ErrUnknownIdiom)
}

// Apply runs k steps of id on copies of a and b and returns the final result.
// The inputs are not modified.
func Apply(id Idiom, a *matrix.Diagonal, b *matrix.Sparse, k int) (*matrix.Sparse, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Apply: %w", matrix.ErrNilMatrix)
	}
	step, err := stepFor(id)
	if err != nil {
		return nil, err
	}
	w, err := newWorkspace(id, a, b.CloneSparse())
	if err != nil {
		return nil, fmt.Errorf("Apply %v: %w", id, err)
	}
	for j := 0; j < k; j++ {
		if err = step(w); err != nil {
			return nil, fmt.Errorf("Apply %v step %d: %w", id, j, err)
		}
	}
	if w.out == nil {
		return w.b, nil
	}

	return w.out, nil
}
