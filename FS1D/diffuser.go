package FS1D

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/notargets/gotracer/utils"
)

// Diffuser advances the diffusion equation ∂C/∂t = κ·∂²C/∂x² on a
// periodic grid. Each Fourier mode decays as exp(-κ·k²·t), so a step is
// exact for any dt; dt only sets the recording granularity.
type Diffuser struct {
	Grid  *Grid1D
	Kappa float64 // Diffusivity
	DT    float64 // Time advanced per substep
	U     utils.Vector
	time  float64
}

func NewDiffuser(g *Grid1D, kappa, dt float64) (d *Diffuser) {
	d = &Diffuser{
		Grid:  g,
		Kappa: kappa,
		DT:    dt,
		U:     utils.NewVector(g.N),
	}
	return
}

// SetField copies C in as the concentration at time zero
func (d *Diffuser) SetField(C utils.Vector) {
	copy(d.U.DataP, C.DataP)
	d.time = 0
}

// Field returns a copy of the current concentration
func (d *Diffuser) Field() utils.Vector {
	return d.U.Copy()
}

func (d *Diffuser) Time() float64 {
	return d.time
}

// Step advances the field by nsub substeps of DT with a single
// transform pair
func (d *Diffuser) Step(nsub int) {
	var (
		elapsed = d.DT * float64(nsub)
	)
	Uhat := fft.FFTReal(d.U.DataP)
	for i, k2 := range d.Grid.K2 {
		Uhat[i] *= complex(math.Exp(-d.Kappa*k2*elapsed), 0)
	}
	u := fft.IFFT(Uhat)
	for i := range d.U.DataP {
		d.U.DataP[i] = real(u[i])
	}
	d.time += elapsed
}
