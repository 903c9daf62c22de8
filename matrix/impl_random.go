// SPDX-License-Identifier: MIT

// Package matrix - random operand generation.
//
// Both generators draw uniformly from [0,1) using the caller's *rand.Rand,
// so a fixed seed reproduces the same operands. Draw order is row 0..n-1.

package matrix

import (
	"fmt"
	"math/rand"
)

const opRandom = "Random"

// RandomDiagonal returns an n×n Diagonal with values drawn from rng.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrNilSource when rng is nil.
func RandomDiagonal(n int, rng *rand.Rand, opts ...Option) (*Diagonal, error) {
	if rng == nil {
		return nil, matrixErrorf(opRandom, ErrNilSource)
	}
	m, err := NewDiagonal(n, opts...)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	for i := range m.d {
		m.d[i] = rng.Float64()
	}

	return m, nil
}

// RandomSparseDiagonal returns an n×n Sparse with exactly one stored entry
// per row, located on the diagonal, with a value drawn from rng.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrNilSource when rng is nil.
func RandomSparseDiagonal(n int, rng *rand.Rand, opts ...Option) (*Sparse, error) {
	if rng == nil {
		return nil, matrixErrorf(opRandom, ErrNilSource)
	}
	if n <= 0 {
		return nil, matrixErrorf(opRandom, ErrInvalidDimensions)
	}
	s, err := NewSparse(n, n, append(opts[:len(opts):len(opts)], WithReserve(n))...)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	s.indices = s.indices[:n]
	s.data = s.data[:n]
	for i := 0; i < n; i++ {
		s.indptr[i+1] = i + 1
		s.indices[i] = i
		s.data[i] = rng.Float64()
	}

	return s, nil
}

// SparseDiagonalFrom builds an n×n Sparse storing vals on the diagonal,
// one entry per row (zeros included).
// Errors: ErrInvalidDimensions when vals is empty; ErrNaNInf under policy.
func SparseDiagonalFrom(vals []float64, opts ...Option) (*Sparse, error) {
	n := len(vals)
	if n == 0 {
		return nil, matrixErrorf(opRandom, ErrInvalidDimensions)
	}
	s, err := NewSparse(n, n, append(opts[:len(opts):len(opts)], WithReserve(n))...)
	if err != nil {
		return nil, err
	}
	s.indices = s.indices[:n]
	s.data = s.data[:n]
	for i, v := range vals {
		if s.validateNaNInf && isNonFinite(v) {
			return nil, fmt.Errorf("%s.%s(%d,%d): %w", ctxSparse, ctxSet, i, i, ErrNaNInf)
		}
		s.indptr[i+1] = i + 1
		s.indices[i] = i
		s.data[i] = v
	}

	return s, nil
}
