// Package physics holds the pure functions behind a diagnosis: the
// thermodynamic floor of a batch and the per-category weights.
package physics

import (
	"math"
	"sort"
)

// FloorPercentile is the percentile of batch volumes used as the floor.
const FloorPercentile = 5.0

// ThermodynamicFloor returns the 5th percentile of volumes, or 0 when
// volumes is empty.
func ThermodynamicFloor(volumes []float64) float64 {
	return Percentile(volumes, FloorPercentile)
}

// Percentile returns the p-th percentile of values using linear
// interpolation between the closest ranks of the sorted values.
// p is clamped to [0, 100]. An empty input yields 0.
// values is not modified.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := math.Floor(rank)
	hi := math.Ceil(rank)
	lower := sorted[int(lo)]
	upper := sorted[int(hi)]
	return lower + (upper-lower)*(rank-lo)
}
