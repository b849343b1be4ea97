package tracer

import (
	"sort"

	"github.com/notargets/gotracer/utils"
)

/*
The reordered concentration moment measures the spreading of a tracer
field without reference to the spatial coordinates of the samples: the
concentrations are ranked largest first, then each rank index is treated
as a pseudo-coordinate and a moment is taken against it. For a compact
blob the large values cluster at low ranks and the moment is small; as
diffusion flattens the field, concentration spreads to higher ranks and
the moment grows. For linear diffusion the growth rate of the moment is
proportional to the diffusivity:

	m_p(C, Δ) = Δ^p · Σ_k k^p · C_ranked[k] / Σ_k C_ranked[k],  k = 1..N

with p = 1 measuring the area occupied by a 2D blob and p = 2 measuring
the squared extent of a 1D profile or 2D band. Δ is the grid cell
measure at the call site: length, area, or area squared.
*/

// ReorderedMoment computes m_p for the concentration samples C with
// grid cell measure delta. C is left unmodified. The order of equal
// values after ranking is arbitrary and does not affect the result. A
// field with zero total concentration divides by zero, matching the
// underlying formula.
func ReorderedMoment(C []float64, delta float64, p int) float64 {
	var (
		sorted   = make([]float64, len(C))
		weighted float64
		total    float64
	)
	copy(sorted, C)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	for i, c := range sorted {
		weighted += utils.POW(float64(i+1), p) * c
		total += c
	}
	return utils.POW(delta, p) * weighted / total
}
