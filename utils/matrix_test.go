package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.RawMatrix().Data, []float64{1, 4, 2, 5, 3, 6})
	}
	// Mul
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Mul(M.Transpose())
		assert.Equal(t, A, NewMatrix(2, 2, []float64{
			14, 32,
			32, 77,
		}))
	}
	// Chained scalar ops
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		M.Scale(2).AddScalar(-1)
		assert.Equal(t, M.DataP, []float64{1, 3, 5, 7})
	}
	// ElMul, POW
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Copy().ElMul(M)
		assert.Equal(t, A.DataP, []float64{1, 4, 9, 16})
		B := M.Copy().POW(2)
		assert.Equal(t, A.DataP, B.DataP)
	}
	// Row, Col, SetRow
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, M.Row(1).DataP, []float64{4, 5, 6})
		assert.Equal(t, M.Col(2).DataP, []float64{3, 6})
		M.SetRow(0, []float64{7, 8, 9})
		assert.Equal(t, M.Row(0).DataP, []float64{7, 8, 9})
	}
	// Min, Max, Sum
	{
		M := NewMatrix(2, 2, []float64{
			-1, 2,
			3, -4,
		})
		assert.Equal(t, M.Min(), -4.)
		assert.Equal(t, M.Max(), 3.)
		assert.Equal(t, M.Sum(), 0.)
	}
	// ReadOnly enforcement
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
}
