package Diffusion1D

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffusion1D(t *testing.T) {
	c := NewDiffusion(2.e-2, 0.5, 10., 40., 1024, 10)
	c.Run(false)
	require.Equal(t, 11, c.Series.Len())
	// Moment grows monotonically under diffusion
	for i := 1; i < c.Series.Len(); i++ {
		assert.Greater(t, c.Series.Moments[i], c.Series.Moments[i-1])
	}
	K, err := c.Series.EstimateDiffusivity()
	require.NoError(t, err)
	assert.InDelta(t, c.Kappa, K, 0.05*c.Kappa)
}

func TestDiffusion1DPlotOutputs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file output test in short mode")
	}
	c := NewDiffusion(1.e-2, 0.5, 2., 20., 256, 4)
	c.PlotDir = t.TempDir()
	c.Run(false)
	for _, name := range []string{"profile.png", "moment.png", "diffusion1d.gif"} {
		_, err := os.Stat(filepath.Join(c.PlotDir, name))
		assert.NoError(t, err, "expected output file %s", name)
	}
	assert.Equal(t, 5, len(c.frames))
}
