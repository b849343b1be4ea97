package FS2D

import (
	"github.com/notargets/gotracer/utils"
)

/*
Tensor product Fourier spectral discretization of the periodic box
[0, XMax) x [0, YMax). Fields are stored Ny x Nx, row j holding the
samples at y_j, so a flattened field traverses x fastest.
*/

type Grid2D struct {
	Nx, Ny     int
	XMax, YMax float64
	Dx, Dy     float64
	X, Y       utils.Vector // Axis node coordinates
	K2         utils.Matrix // kx² + ky² per mode, Ny x Nx, FFT storage order
}

func NewGrid2D(nx, ny int, xmax, ymax float64) (g *Grid2D) {
	g = &Grid2D{
		Nx:   nx,
		Ny:   ny,
		XMax: xmax,
		YMax: ymax,
		Dx:   xmax / float64(nx),
		Dy:   ymax / float64(ny),
	}
	g.X = utils.NewVector(nx).Linspace(0, xmax*float64(nx-1)/float64(nx))
	g.Y = utils.NewVector(ny).Linspace(0, ymax*float64(ny-1)/float64(ny))
	kx := utils.WaveNumbers(nx, xmax)
	ky := utils.WaveNumbers(ny, ymax)
	g.K2 = utils.NewMatrix(ny, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			g.K2.DataP[j*nx+i] = kx[i]*kx[i] + ky[j]*ky[j]
		}
	}
	return
}

// CellArea is the measure of one grid cell, the Δ passed to the
// reordered moment for blob fields
func (g *Grid2D) CellArea() float64 {
	return g.Dx * g.Dy
}
