package plotting

import (
	"image"
	"image/draw"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// LineFrame renders one profile snapshot to an RGBA image for use as
// an animation frame. Axis limits are fixed by the caller so frames
// stay registered across the animation.
func LineFrame(title string, x, f []float64, fMin, fMax float64) (img *image.RGBA, err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "concentration"
	p.X.Min, p.X.Max = x[0], x[len(x)-1]
	p.Y.Min, p.Y.Max = fMin, fMax

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = f[i]
	}
	var line *plotter.Line
	if line, err = plotter.NewLine(xys); err != nil {
		return
	}
	line.Color = plotutilColor(0)
	p.Add(line)

	c := vgimg.New(5*vg.Inch, 3.5*vg.Inch)
	p.Draw(vgdraw.New(c))
	src := c.Image()
	img = image.NewRGBA(src.Bounds())
	draw.Draw(img, src.Bounds(), src, image.Point{}, draw.Src)
	return
}
