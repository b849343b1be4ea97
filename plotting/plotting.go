package plotting

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// XYSeries pairs a label with the data of one line on a plot
type XYSeries struct {
	Label string
	X, Y  []float64
}

// SaveLinePlot writes a PNG with one line per series
func SaveLinePlot(path, title, xLabel, yLabel string, series ...XYSeries) (err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %q: x and y lengths differ: %d, %d", s.Label, len(s.X), len(s.Y))
		}
		xys := make(plotter.XYs, len(s.X))
		for k := range s.X {
			xys[k].X = s.X[k]
			xys[k].Y = s.Y[k]
		}
		var line *plotter.Line
		if line, err = plotter.NewLine(xys); err != nil {
			return
		}
		line.Color = plotutilColor(i)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func plotutilColor(i int) color.Color {
	palette := []color.Color{
		color.RGBA{R: 0, G: 90, B: 181, A: 255},
		color.RGBA{R: 220, G: 50, B: 32, A: 255},
		color.RGBA{R: 0, G: 140, B: 60, A: 255},
		color.RGBA{R: 130, G: 60, B: 180, A: 255},
	}
	return palette[i%len(palette)]
}

// Heatmap renders a row major Ny x Nx field into an RGBA image, one
// pixel per sample, bottom row of the field at the bottom of the image
func Heatmap(field []float64, nx, ny int, fMin, fMax float64) (img *image.RGBA) {
	img = image.NewRGBA(image.Rect(0, 0, nx, ny))
	scale := fMax - fMin
	if scale <= 0 {
		scale = 1
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			f := (field[j*nx+i] - fMin) / scale
			if f < 0 {
				f = 0
			}
			if f > 1 {
				f = 1
			}
			img.Set(i, ny-1-j, heatColor(f))
		}
	}
	return
}

// heatColor maps [0,1] through a dark blue to yellow ramp
func heatColor(f float64) color.RGBA {
	return color.RGBA{
		R: uint8(255. * f),
		G: uint8(220. * f * f),
		B: uint8(90. * (1. - f)),
		A: 255,
	}
}

// SavePNG writes img to path, creating parent directories as needed
func SavePNG(path string, img image.Image) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return
	}
	var fd *os.File
	if fd, err = os.Create(path); err != nil {
		return
	}
	defer fd.Close()
	return png.Encode(fd, img)
}

// SaveGIF assembles frames into a looping animation with the given
// per frame delay in hundredths of a second
func SaveGIF(path string, frames []*image.RGBA, delay int) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to animate")
	}
	if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return
	}
	anim := &gif.GIF{}
	for _, frame := range frames {
		pal := image.NewPaletted(frame.Bounds(), palette256())
		draw.FloydSteinberg.Draw(pal, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	var fd *os.File
	if fd, err = os.Create(path); err != nil {
		return
	}
	defer fd.Close()
	return gif.EncodeAll(fd, anim)
}

func palette256() color.Palette {
	// Ramp matching heatColor plus house colors for line frames
	pal := make(color.Palette, 0, 256)
	for i := 0; i < 252; i++ {
		pal = append(pal, heatColor(float64(i)/251.))
	}
	pal = append(pal, color.RGBA{A: 255},
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
		color.RGBA{R: 0, G: 90, B: 181, A: 255},
		color.RGBA{R: 220, G: 50, B: 32, A: 255})
	return pal
}
