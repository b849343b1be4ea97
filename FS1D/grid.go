package FS1D

import (
	"github.com/notargets/gotracer/utils"
)

/*
Fourier spectral discretization of a periodic 1D interval [0, XMax).
Nodes exclude the right endpoint, matching the transform convention, so
Dx = XMax/N and node i sits at i·Dx.
*/

type Grid1D struct {
	N    int     // Number of sample points
	XMax float64 // Domain length
	Dx   float64
	X    utils.Vector // Node coordinates
	K2   []float64    // Squared angular wavenumbers, FFT storage order
}

func NewGrid1D(N int, xmax float64) (g *Grid1D) {
	g = &Grid1D{
		N:    N,
		XMax: xmax,
		Dx:   xmax / float64(N),
	}
	g.X = utils.NewVector(N).Linspace(0, xmax*float64(N-1)/float64(N))
	k := utils.WaveNumbers(N, xmax)
	g.K2 = make([]float64, N)
	for i, ki := range k {
		g.K2[i] = ki * ki
	}
	return
}

// Laplacian builds the periodic three point second difference operator
// scaled by 1/Dx², used as a finite difference reference against the
// spectral stepper
func (g *Grid1D) Laplacian() utils.CSR {
	var (
		N     = g.N
		oodx2 = 1. / (g.Dx * g.Dx)
	)
	A := utils.NewDOK(N, N)
	for i := 0; i < N; i++ {
		im := (i - 1 + N) % N
		ip := (i + 1) % N
		A.Set(i, im, oodx2)
		A.Set(i, i, -2.*oodx2)
		A.Set(i, ip, oodx2)
	}
	return A.ToCSR()
}
