package Diffusion2D

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"time"

	"github.com/notargets/gotracer/FS2D"
	"github.com/notargets/gotracer/plotting"
	"github.com/notargets/gotracer/tracer"
	"github.com/notargets/gotracer/utils"
)

type CaseType uint8

const (
	BLOB CaseType = iota
	BAND
)

var (
	case_names = []string{
		"Gaussian Blob",
		"Gaussian Band",
	}
)

func (ct CaseType) String() string {
	return case_names[ct]
}

func NewCaseType(name string) (ct CaseType) {
	switch name {
	case "Blob", "blob", "BLOB":
		ct = BLOB
	case "Band", "band", "BAND":
		ct = BAND
	default:
		err := fmt.Errorf("unsupported case type: %s, must be Blob or Band", name)
		panic(err)
	}
	return
}

type Diffusion struct {
	// Input parameters
	Kappa, Sigma, FinalTime float64
	RecordSteps             int
	Case                    CaseType
	Grid                    *FS2D.Grid2D
	Solver                  *FS2D.Diffuser
	Series                  *tracer.MomentSeries
	delta                   float64 // Cell measure fed to the moment for this case
	PlotDir                 string  // When set, PNG images and a GIF are written here
	PlotOnce                sync.Once
	chart                   *utils.FieldChart
	frames                  []*image.RGBA
	frameMax                float64
}

func NewDiffusion(kappa, sigma, finalTime, xmax float64, n, recordSteps int, caseType CaseType) (c *Diffusion) {
	var (
		g = FS2D.NewGrid2D(n, n, xmax, xmax)
	)
	c = &Diffusion{
		Kappa:       kappa,
		Sigma:       sigma,
		FinalTime:   finalTime,
		RecordSteps: recordSteps,
		Case:        caseType,
		Grid:        g,
		Solver:      FS2D.NewDiffuser(g, kappa, finalTime/float64(recordSteps)),
	}
	switch caseType {
	case BLOB:
		c.Series = tracer.NewMomentSeries(tracer.Blob2D)
		c.delta = g.CellArea()
		c.Solver.SetField(tracer.GaussianBlob2D(g.X, g.Y, xmax/2, xmax/2, sigma))
	case BAND:
		c.Series = tracer.NewMomentSeries(tracer.Band2D)
		// Rank times measure must recover the band width, so the cell
		// area is normalized by the band length
		c.delta = g.CellArea() / g.YMax
		c.Solver.SetField(tracer.GaussianBand2D(g.X, g.Y, xmax/2, sigma))
	}
	fmt.Printf("Kappa = %8.6f, Sigma = %8.4f, N = %dx%d, XMax = %8.4f\nCase: %s, Geometry: %s\n\n",
		kappa, sigma, n, n, xmax, c.Case, c.Series.Geom)
	c.frameMax = c.Solver.U.Max()
	return
}

func (c *Diffusion) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		logFrequency = 10
	)
	fmt.Printf("FinalTime = %8.4f, RecordSteps = %d, dt = %8.6f\n",
		c.FinalTime, c.RecordSteps, c.Solver.DT)
	c.record()
	c.Plot(showGraph, graphDelay)
	for tstep := 1; tstep <= c.RecordSteps; tstep++ {
		c.Solver.Step(1)
		c.record()
		c.Plot(showGraph, graphDelay)
		if tstep%logFrequency == 0 {
			U := c.Solver.U
			fmt.Printf("Time = %8.4f, m%d[%d] = %10.6f, umin = %8.6f, umax = %8.6f\n",
				c.Solver.Time(), c.Series.Geom.Exponent(), tstep,
				c.Series.Moments[c.Series.Len()-1], U.Min(), U.Max())
		}
	}
	K, err := c.Series.EstimateDiffusivity()
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nEstimated K = %10.8f, input Kappa = %10.8f, relative error = %6.3f%%\n",
		K, c.Kappa, 100.*(K-c.Kappa)/c.Kappa)
	if len(c.PlotDir) != 0 {
		c.writePlots()
	}
}

func (c *Diffusion) record() {
	m := tracer.ReorderedMoment(c.Solver.U.DataP, c.delta, c.Series.Geom.Exponent())
	c.Series.Append(c.Solver.Time(), m)
}

func (c *Diffusion) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g = c.Grid
	)
	if len(c.PlotDir) != 0 {
		c.frames = append(c.frames,
			plotting.Heatmap(c.Solver.U.DataP, g.Nx, g.Ny, 0, c.frameMax))
	}
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		gm := utils.RegularGridTriMesh(g.X.DataP, g.Y.DataP)
		c.chart = utils.NewFieldChart(1024, 1024, g.X.Min(), g.X.Max(),
			g.Y.Min(), g.Y.Max(), &gm)
	})
	c.chart.AddShadedField(c.Solver.U.DataP, 0, c.frameMax)
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

func (c *Diffusion) writePlots() {
	var (
		g = c.Grid
	)
	err := plotting.SavePNG(filepath.Join(c.PlotDir, "field.png"),
		plotting.Heatmap(c.Solver.U.DataP, g.Nx, g.Ny, 0, c.Solver.U.Max()))
	if err != nil {
		panic(err)
	}
	mLabel := fmt.Sprintf("m%d", c.Series.Geom.Exponent())
	err = plotting.SaveLinePlot(filepath.Join(c.PlotDir, "moment.png"),
		"Reordered Moment", "t", mLabel,
		plotting.XYSeries{Label: mLabel, X: c.Series.Times, Y: c.Series.Moments})
	if err != nil {
		panic(err)
	}
	if err = plotting.SaveGIF(filepath.Join(c.PlotDir, "diffusion2d.gif"), c.frames, 8); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote field.png, moment.png, diffusion2d.gif to %s\n", c.PlotDir)
}
