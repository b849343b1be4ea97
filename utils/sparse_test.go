package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	// DOK assembly, CSR conversion
	{
		D := NewDOK(3, 3)
		D.Set(0, 0, 2)
		D.Set(1, 1, 3)
		D.Set(2, 0, -1)
		S := D.ToCSR()
		nr, nc := S.Dims()
		assert.Equal(t, nr, 3)
		assert.Equal(t, nc, 3)
		assert.Equal(t, S.At(0, 0), 2.)
		assert.Equal(t, S.At(2, 0), -1.)
		assert.Equal(t, S.At(2, 2), 0.)
	}
	// MulVec
	{
		D := NewDOK(2, 3)
		D.Set(0, 0, 1)
		D.Set(0, 2, 2)
		D.Set(1, 1, -1)
		V := NewVector(3, []float64{1, 2, 3})
		R := D.ToCSR().MulVec(V)
		assert.Equal(t, R.DataP, []float64{7, -2})
	}
}
