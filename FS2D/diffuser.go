package FS2D

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/notargets/gotracer/utils"
)

// Diffuser advances ∂C/∂t = κ·∇²C on the periodic box. As in 1D, every
// Fourier mode decays as exp(-κ·(kx²+ky²)·t) and stepping is exact.
type Diffuser struct {
	Grid  *Grid2D
	Kappa float64 // Diffusivity
	DT    float64 // Time advanced per substep
	U     utils.Matrix
	time  float64
}

func NewDiffuser(g *Grid2D, kappa, dt float64) (d *Diffuser) {
	d = &Diffuser{
		Grid:  g,
		Kappa: kappa,
		DT:    dt,
		U:     utils.NewMatrix(g.Ny, g.Nx),
	}
	return
}

// SetField copies C in as the concentration at time zero
func (d *Diffuser) SetField(C utils.Matrix) {
	copy(d.U.DataP, C.DataP)
	d.time = 0
}

// Field returns a copy of the current concentration, Ny x Nx
func (d *Diffuser) Field() utils.Matrix {
	return d.U.Copy()
}

func (d *Diffuser) Time() float64 {
	return d.time
}

// Step advances the field by nsub substeps of DT with a single 2D
// transform pair
func (d *Diffuser) Step(nsub int) {
	var (
		g       = d.Grid
		elapsed = d.DT * float64(nsub)
		rows    = make([][]float64, g.Ny)
	)
	for j := 0; j < g.Ny; j++ {
		rows[j] = d.U.DataP[j*g.Nx : (j+1)*g.Nx]
	}
	Uhat := fft.FFT2Real(rows)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			k2 := g.K2.DataP[j*g.Nx+i]
			Uhat[j][i] *= complex(math.Exp(-d.Kappa*k2*elapsed), 0)
		}
	}
	u := fft.IFFT2(Uhat)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			d.U.DataP[j*g.Nx+i] = real(u[j][i])
		}
	}
	d.time += elapsed
}
