// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the Dense, Diagonal and Sparse
// implementations. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: Rows/Cols are O(1) for every implementation; At/Set are
// O(1) for Dense and Diagonal and O(log k) / O(nnz) for Sparse, where k is
// the number of stored entries in the addressed row.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Triplet is a single (row, col, value) entry in coordinate form.
// It is the exchange format between Sparse, Triplets and tests.
type Triplet struct {
	Row int     // row index
	Col int     // column index
	Val float64 // stored value
}
