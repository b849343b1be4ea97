package tracer

import (
	"math"

	"github.com/notargets/gotracer/utils"
)

/*
Initial tracer fields are normalized probability densities, so the total
concentration integrates to one up to grid truncation. Each constructor
centers the feature in the periodic domain so the tails decay well
before the boundary; sigma should be small against the domain size.
*/

// GaussianProfile1D evaluates the normal density with standard
// deviation sigma centered at x0 on the nodes X
func GaussianProfile1D(X utils.Vector, x0, sigma float64) (C utils.Vector) {
	var (
		norm = 1. / (sigma * math.Sqrt(2.*math.Pi))
	)
	C = X.Copy().Apply(func(x float64) float64 {
		arg := (x - x0) / sigma
		return norm * math.Exp(-0.5*arg*arg)
	})
	return
}

// GaussianBlob2D evaluates the radially symmetric bivariate normal
// density centered at (x0, y0) on the tensor product grid X ⊗ Y,
// returning an Ny x Nx field matrix
func GaussianBlob2D(X, Y utils.Vector, x0, y0, sigma float64) (C utils.Matrix) {
	var (
		nx, ny = X.Len(), Y.Len()
		norm   = 1. / (2. * math.Pi * sigma * sigma)
	)
	C = utils.NewMatrix(ny, nx)
	for j := 0; j < ny; j++ {
		dy := Y.DataP[j] - y0
		for i := 0; i < nx; i++ {
			dx := X.DataP[i] - x0
			C.DataP[j*nx+i] = norm * math.Exp(-0.5*(dx*dx+dy*dy)/(sigma*sigma))
		}
	}
	return
}

// GaussianBand2D evaluates a band: normal in x, uniform in y,
// returning an Ny x Nx field matrix
func GaussianBand2D(X, Y utils.Vector, x0, sigma float64) (C utils.Matrix) {
	var (
		nx, ny  = X.Len(), Y.Len()
		profile = GaussianProfile1D(X, x0, sigma)
	)
	C = utils.NewMatrix(ny, nx)
	for j := 0; j < ny; j++ {
		copy(C.DataP[j*nx:(j+1)*nx], profile.DataP)
	}
	return
}
