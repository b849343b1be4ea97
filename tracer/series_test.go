package tracer

import (
	"math"
	"testing"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDiffusivity(t *testing.T) {
	var (
		kappa = 1.e-3
	)
	// Synthetic series growing exactly as const·K·t
	for _, geom := range []Geometry{Gaussian1D, Blob2D, Band2D} {
		ms := NewMomentSeries(geom)
		for i := 0; i <= 20; i++ {
			time := float64(i) * 0.5
			ms.Append(time, 2.5+geom.SpreadConstant()*kappa*time)
		}
		K, err := ms.EstimateDiffusivity()
		require.NoError(t, err)
		assert.InDelta(t, kappa, K, 1.e-12, "geometry %s", geom)
	}

	// Too few samples
	ms := NewMomentSeries(Gaussian1D)
	_, err := ms.EstimateDiffusivity()
	assert.Error(t, err)
	ms.Append(0, 1)
	_, err = ms.EstimateDiffusivity()
	assert.Error(t, err)
}

func TestGeometryConstants(t *testing.T) {
	assert.Equal(t, 2, Gaussian1D.Exponent())
	assert.Equal(t, 1, Blob2D.Exponent())
	assert.Equal(t, 2, Band2D.Exponent())
	assert.Equal(t, 8., Gaussian1D.SpreadConstant())
	assert.Equal(t, 4*math.Pi, Blob2D.SpreadConstant())
	assert.Equal(t, 8., Band2D.SpreadConstant())
}

// The two point estimate assumes linear growth between the endpoints.
// Confirm that on a linear series the two point result agrees with a
// least squares slope, so the shortcut loses nothing when the
// assumption holds.
func TestTwoPointMatchesRegressionOnLinearSeries(t *testing.T) {
	var (
		kappa = 5.e-4
		ms    = NewMomentSeries(Band2D)
	)
	for i := 0; i <= 50; i++ {
		time := float64(i) * 0.25
		ms.Append(time, 1.75+ms.Geom.SpreadConstant()*kappa*time)
	}
	K, err := ms.EstimateDiffusivity()
	require.NoError(t, err)

	slope, _, rsquared, _, _, _ := stats.LinearRegression(ms.Times, ms.Moments)
	assert.InDelta(t, slope/ms.Geom.SpreadConstant(), K, 1.e-12)
	assert.InDelta(t, 1., rsquared, 1.e-12)
}
