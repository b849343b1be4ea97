package Diffusion2D

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseType(t *testing.T) {
	assert.Equal(t, BLOB, NewCaseType("Blob"))
	assert.Equal(t, BAND, NewCaseType("band"))
	assert.Equal(t, "Gaussian Blob", BLOB.String())
	assert.Panics(t, func() { NewCaseType("vortex") })
}

func TestDiffusion2DBlob(t *testing.T) {
	c := NewDiffusion(1.e-2, 0.5, 8., 20., 128, 8, BLOB)
	c.Run(false)
	require.Equal(t, 9, c.Series.Len())
	K, err := c.Series.EstimateDiffusivity()
	require.NoError(t, err)
	assert.InDelta(t, c.Kappa, K, 0.05*c.Kappa)
}

func TestDiffusion2DBand(t *testing.T) {
	c := NewDiffusion(2.e-2, 0.5, 8., 40., 256, 8, BAND)
	c.Run(false)
	K, err := c.Series.EstimateDiffusivity()
	require.NoError(t, err)
	assert.InDelta(t, c.Kappa, K, 0.05*c.Kappa)
}

func TestDiffusion2DPlotOutputs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file output test in short mode")
	}
	c := NewDiffusion(1.e-2, 0.5, 2., 20., 64, 4, BLOB)
	c.PlotDir = t.TempDir()
	c.Run(false)
	for _, name := range []string{"field.png", "moment.png", "diffusion2d.gif"} {
		_, err := os.Stat(filepath.Join(c.PlotDir, name))
		assert.NoError(t, err, "expected output file %s", name)
	}
	assert.Equal(t, 5, len(c.frames))
}
