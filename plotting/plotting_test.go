package plotting

import (
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLinePlot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.png")
	err := SaveLinePlot(path, "test", "t", "m",
		XYSeries{Label: "m2", X: []float64{0, 1, 2}, Y: []float64{1, 2, 3}})
	require.NoError(t, err)

	fd, err := os.Open(path)
	require.NoError(t, err)
	defer fd.Close()
	cfg, err := png.DecodeConfig(fd)
	require.NoError(t, err)
	assert.Greater(t, cfg.Width, 0)

	// Mismatched series lengths are rejected
	err = SaveLinePlot(filepath.Join(dir, "bad.png"), "t", "x", "y",
		XYSeries{X: []float64{0, 1}, Y: []float64{1}})
	assert.Error(t, err)
}

func TestHeatmapAndGIF(t *testing.T) {
	var (
		nx, ny = 8, 4
	)
	field := make([]float64, nx*ny)
	field[0] = 1
	img := Heatmap(field, nx, ny, 0, 1)
	assert.Equal(t, nx, img.Bounds().Dx())
	assert.Equal(t, ny, img.Bounds().Dy())
	// Field row 0 lands on the bottom image row
	r, _, _, _ := img.At(0, ny-1).RGBA()
	assert.NotZero(t, r)

	dir := t.TempDir()
	path := filepath.Join(dir, "anim.gif")
	err := SaveGIF(path, []*image.RGBA{img, img, img}, 10)
	require.NoError(t, err)

	fd, err := os.Open(path)
	require.NoError(t, err)
	defer fd.Close()
	anim, err := gif.DecodeAll(fd)
	require.NoError(t, err)
	assert.Equal(t, 3, len(anim.Image))

	err = SaveGIF(filepath.Join(dir, "empty.gif"), nil, 10)
	assert.Error(t, err)
}

func TestLineFrame(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	f := []float64{0, 1, 0.5, 0}
	img, err := LineFrame("frame", x, f, 0, 1)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 100)
}
