// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestDenseAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestDenseNaNPolicy verifies the numeric guard and its opt-out.
func TestDenseNaNPolicy(t *testing.T) {
	m := mustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestDenseCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestDenseCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

// TestDenseStringOutput checks that String() formats the matrix as expected.
func TestDenseStringOutput(t *testing.T) {
	m := mustDense(t, 2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.Equal(t, []float64{1, 2, 3, 4}, m.RawRowMajor())
}
