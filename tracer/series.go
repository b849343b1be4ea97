package tracer

import (
	"fmt"
	"math"
)

// Geometry selects the initial condition shape and fixes the moment
// exponent and spreading constant used when converting moment growth to
// a diffusivity.
type Geometry uint8

const (
	Gaussian1D Geometry = iota // 1D Gaussian profile, m_2 grows as 8·K·t
	Blob2D                     // radial Gaussian blob, m_1 grows as 4π·K·t
	Band2D                     // Gaussian band, m_2 grows as 8·K·t
)

var (
	geometry_names = []string{
		"1D Gaussian Profile",
		"2D Gaussian Blob",
		"2D Gaussian Band",
	}
)

func (g Geometry) String() string {
	return geometry_names[g]
}

// Exponent is the moment order p recorded for this geometry
func (g Geometry) Exponent() int {
	if g == Blob2D {
		return 1
	}
	return 2
}

// SpreadConstant relates moment growth rate to diffusivity
func (g Geometry) SpreadConstant() float64 {
	if g == Blob2D {
		return 4 * math.Pi
	}
	return 8
}

// MomentSeries accumulates one (time, moment) sample per recorded
// simulation step.
type MomentSeries struct {
	Geom           Geometry
	Times, Moments []float64
}

func NewMomentSeries(geom Geometry) *MomentSeries {
	return &MomentSeries{
		Geom: geom,
	}
}

func (ms *MomentSeries) Append(time, moment float64) {
	ms.Times = append(ms.Times, time)
	ms.Moments = append(ms.Moments, moment)
}

func (ms *MomentSeries) Len() int {
	return len(ms.Times)
}

// EstimateDiffusivity converts the recorded series to a diffusivity by
// a two point finite difference between the first and last samples:
//
//	K = (m[last] - m[first]) / (const · (t[last] - t[first]))
//
// Growth is assumed linear over the recorded interval; no fit quality
// check is made.
func (ms *MomentSeries) EstimateDiffusivity() (K float64, err error) {
	var (
		n = ms.Len()
	)
	if n < 2 {
		err = fmt.Errorf("need at least two recorded samples to estimate diffusivity, have %d", n)
		return
	}
	dm := ms.Moments[n-1] - ms.Moments[0]
	dt := ms.Times[n-1] - ms.Times[0]
	K = dm / (ms.Geom.SpreadConstant() * dt)
	return
}
