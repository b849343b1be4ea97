package Diffusion1D

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/notargets/gotracer/FS1D"
	"github.com/notargets/gotracer/plotting"
	"github.com/notargets/gotracer/tracer"
	"github.com/notargets/gotracer/utils"
)

type Diffusion struct {
	// Input parameters
	Kappa, Sigma, FinalTime float64
	RecordSteps             int
	Grid                    *FS1D.Grid1D
	Solver                  *FS1D.Diffuser
	Series                  *tracer.MomentSeries
	PlotDir                 string // When set, PNG frames and a GIF are written here
	PlotOnce                sync.Once
	chart                   *utils.LineChart
	frames                  []*image.RGBA
}

func NewDiffusion(kappa, sigma, finalTime, xmax float64, n, recordSteps int) (c *Diffusion) {
	var (
		g = FS1D.NewGrid1D(n, xmax)
	)
	c = &Diffusion{
		Kappa:       kappa,
		Sigma:       sigma,
		FinalTime:   finalTime,
		RecordSteps: recordSteps,
		Grid:        g,
		Solver:      FS1D.NewDiffuser(g, kappa, finalTime/float64(recordSteps)),
		Series:      tracer.NewMomentSeries(tracer.Gaussian1D),
	}
	fmt.Printf("Kappa = %8.6f, Sigma = %8.4f, N = %d, XMax = %8.4f\nGeometry: %s\n\n",
		kappa, sigma, n, xmax, c.Series.Geom)
	c.Solver.SetField(tracer.GaussianProfile1D(g.X, xmax/2, sigma))
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
			fmt.Printf("Time = %8.4f, m2[%d] = %10.6f, umin = %8.6f, umax = %8.6f\n",
				c.Solver.Time(), tstep, c.Series.Moments[c.Series.Len()-1], U.Min(), U.Max())
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
	m := tracer.ReorderedMoment(c.Solver.U.DataP, c.Grid.Dx, c.Series.Geom.Exponent())
	c.Series.Append(c.Solver.Time(), m)
}

func (c *Diffusion) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g    = c.Grid
		fMax = c.Solver.U.Max()
	)
	if len(c.PlotDir) != 0 {
		title := fmt.Sprintf("t = %8.4f", c.Solver.Time())
		frame, err := plotting.LineFrame(title, g.X.DataP, c.Solver.U.DataP, 0, c.peakScale())
		if err != nil {
			panic(err)
		}
		c.frames = append(c.frames, frame)
	}
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = utils.NewLineChart(1280, 1024, g.X.Min(), g.X.Max(), 0, 1.05*fMax)
	})
	c.chart.Line(g.X.DataP, c.Solver.U.DataP)
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// peakScale fixes the frame vertical axis at the initial peak height
func (c *Diffusion) peakScale() float64 {
	return 1.05 / (c.Sigma * math.Sqrt(2.*math.Pi))
}

func (c *Diffusion) writePlots() {
	var (
		g = c.Grid
	)
	err := plotting.SaveLinePlot(filepath.Join(c.PlotDir, "profile.png"),
		"Concentration Profile", "x", "concentration",
		plotting.XYSeries{Label: "final", X: g.X.DataP, Y: c.Solver.U.DataP})
	if err != nil {
		panic(err)
	}
	err = plotting.SaveLinePlot(filepath.Join(c.PlotDir, "moment.png"),
		"Reordered Second Moment", "t", "m2",
		plotting.XYSeries{Label: "m2", X: c.Series.Times, Y: c.Series.Moments})
	if err != nil {
		panic(err)
	}
	if err = plotting.SaveGIF(filepath.Join(c.PlotDir, "diffusion1d.gif"), c.frames, 8); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote profile.png, moment.png, diffusion1d.gif to %s\n", c.PlotDir)
}
