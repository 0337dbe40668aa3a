// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/georoute/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {-2, 0}})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)
	assert.Equal(t, [][]float64{{0, 1.5}, {-2, 0}}, m.ToRows())
	assert.Equal(t, "[0, 1.5]\n[-2, 0]\n", m.String())

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {2}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	orig, _ := m.At(0, 0)
	copied, _ := c.At(0, 0)
	assert.Equal(t, 1.0, orig)
	assert.Equal(t, 100.0, copied)
}
