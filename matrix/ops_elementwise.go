// SPDX-License-Identifier: MIT

// Package matrix - elementwise comparison kernels.
//
// ewAllClose is the single implementation behind AllClose and Equal. It has
// structural fast paths so comparing two large Sparse or Diagonal operands
// costs O(nnz) instead of O(rows*cols).

package matrix

import "math"

const opAllClose = "AllClose"

// closeTo reports |x-y| ≤ atol + rtol*|y|.
func closeTo(x, y, rtol, atol float64) bool {
	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// ewAllClose returns (true,nil) if all elements satisfy the tolerance relation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - For Sparse operands an absent entry compares as 0.
//
// Complexity:
//   - Dense/Dense O(r*c); Diagonal/Diagonal O(n); Sparse/Sparse O(nnz(a)+nnz(b));
//     other combinations O(r*c) via At.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	switch x := a.(type) {
	case *Dense:
		if y, ok := b.(*Dense); ok {
			for k := range x.data {
				if !closeTo(x.data[k], y.data[k], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	case *Diagonal:
		if y, ok := b.(*Diagonal); ok {
			for k := range x.d {
				if !closeTo(x.d[k], y.d[k], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	case *Sparse:
		if y, ok := b.(*Sparse); ok {
			return sparseAllClose(x, y, rtol, atol), nil
		}
	}

	// Generic fallback via At (bounds-safe; fixed i→j order).
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// sparseAllClose merges the two sorted column lists of every row.
func sparseAllClose(a, b *Sparse, rtol, atol float64) bool {
	for i := 0; i < a.r; i++ {
		ka, ea := a.indptr[i], a.indptr[i+1]
		kb, eb := b.indptr[i], b.indptr[i+1]
		for ka < ea || kb < eb {
			var av, bv float64
			switch {
			case kb >= eb || (ka < ea && a.indices[ka] < b.indices[kb]):
				av = a.data[ka]
				ka++
			case ka >= ea || b.indices[kb] < a.indices[ka]:
				bv = b.data[kb]
				kb++
			default:
				av, bv = a.data[ka], b.data[kb]
				ka++
				kb++
			}
			if !closeTo(av, bv, rtol, atol) {
				return false
			}
		}
	}

	return true
}
