// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustDiagonal builds a Diagonal from explicit values or fails the test.
func mustDiagonal(tb testing.TB, vals ...float64) *matrix.Diagonal {
	tb.Helper()
	d, err := matrix.NewDiagonalFrom(vals)
	require.NoError(tb, err)

	return d
}

// mustSparseDiag builds a Sparse storing vals on the diagonal or fails the test.
func mustSparseDiag(tb testing.TB, vals ...float64) *matrix.Sparse {
	tb.Helper()
	s, err := matrix.SparseDiagonalFrom(vals)
	require.NoError(tb, err)

	return s
}

// mustSparse compresses triplets into a rows×cols Sparse or fails the test.
func mustSparse(tb testing.TB, rows, cols int, entries ...matrix.Triplet) *matrix.Sparse {
	tb.Helper()
	t, err := matrix.NewTriplets(rows, cols)
	require.NoError(tb, err)
	for _, e := range entries {
		require.NoError(tb, t.Append(e.Row, e.Col, e.Val))
	}
	s, err := t.ToSparse()
	require.NoError(tb, err)

	return s
}

// randomSparse builds an n×n Sparse with up to perRow random entries per row.
func randomSparse(tb testing.TB, n, perRow int, seed int64) *matrix.Sparse {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	t, err := matrix.NewTriplets(n, n, matrix.WithReserve(n*perRow))
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for k := 0; k < perRow; k++ {
			require.NoError(tb, t.Append(i, rng.Intn(n), rng.Float64()))
		}
	}
	s, err := t.ToSparse()
	require.NoError(tb, err)

	return s
}

// requireAllClose asserts a ≈ b under a tight tolerance.
func requireAllClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 1e-12, 1e-12)
	require.NoError(tb, err)
	require.True(tb, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// inf returns +Inf for numeric-policy tests.
func inf() float64 { return math.Inf(1) }
