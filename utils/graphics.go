package utils

import (
	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
)

type LineChart struct {
	Chart *chart2d.Chart2D
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax),
			float32(fmin), float32(fmax), width, height,
			utils2.WHITE, utils2.BLACK),
	}
	return
}

// Line renders x,f as a connected polyline on the chart
func (lc *LineChart) Line(x, f []float64) {
	var (
		line = make([]float32, 0, 4*(len(x)-1))
	)
	for i := 0; i < len(x)-1; i++ {
		line = append(line,
			float32(x[i]), float32(f[i]),
			float32(x[i+1]), float32(f[i+1]),
		)
	}
	lc.Chart.AddLine(line, utils2.GREEN)
}

type FieldChart struct {
	Chart *chart2d.Chart2D
	GMesh *geometry.TriMesh
}

func NewFieldChart(width, height int, xmin, xmax, ymin, ymax float64,
	gm *geometry.TriMesh) (fc *FieldChart) {
	fc = &FieldChart{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax),
			float32(ymin), float32(ymax), width, height,
			utils2.WHITE, utils2.BLACK),
		GMesh: gm,
	}
	return
}

func (fc *FieldChart) AddShadedField(field []float64, fMin, fMax float64) {
	var (
		pField = make([]float32, len(field))
	)
	for i, f := range field {
		pField[i] = float32(f)
	}
	vs := geometry.VertexScalar{
		TMesh:       fc.GMesh,
		FieldValues: pField,
	}
	fc.Chart.AddShadedVertexScalar(&vs, float32(fMin), float32(fMax))
}

// RegularGridTriMesh builds a two triangle per cell mesh over the
// tensor product grid x ⊗ y, vertex numbering row major in y then x
func RegularGridTriMesh(x, y []float64) (tMesh geometry.TriMesh) {
	var (
		nx, ny = len(x), len(y)
		nTris  = 2 * (nx - 1) * (ny - 1)
	)
	tMesh = geometry.TriMesh{
		XY:       make([]float32, 2*nx*ny),
		TriVerts: make([][3]int64, 0, nTris),
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			iv := j*nx + i
			tMesh.XY[2*iv] = float32(x[i])
			tMesh.XY[2*iv+1] = float32(y[j])
		}
	}
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			v0 := int64(j*nx + i)
			v1 := v0 + 1
			v2 := v0 + int64(nx)
			v3 := v2 + 1
			tMesh.TriVerts = append(tMesh.TriVerts,
				[3]int64{v0, v1, v3},
				[3]int64{v0, v3, v2},
			)
		}
	}
	return
}
