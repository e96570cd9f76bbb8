package diagnosis

import (
	"math"

	"github.com/dshills/genesisdiag/internal/physics"
	"github.com/shopspring/decimal"
)

// ValuePlaces is the number of decimal places Record.Value is rounded to.
const ValuePlaces = 2

// Run diagnoses actors and returns one record per actor, in input order.
func Run(actors []Actor) []Record {
	return Diagnose(actors).Records
}

// Diagnose computes the floor over every actor's volume, then values each
// actor as energy * alpha * persistence, where energy is volume / floor
// (0 when the floor is not positive).
func Diagnose(actors []Actor) Report {
	volumes := make([]float64, len(actors))
	for i, a := range actors {
		volumes[i] = a.Volume
	}
	floor := physics.ThermodynamicFloor(volumes)

	records := make([]Record, 0, len(actors))
	for _, a := range actors {
		alpha := physics.Coefficient(a.Type)

		energy := 0.0
		if floor > 0 {
			energy = a.Volume / floor
		}

		value := energy * alpha * physics.Persistence(a.Type)

		records = append(records, Record{
			Name:        a.Name,
			Volume:      a.Volume,
			Value:       round(value, ValuePlaces),
			Coefficient: alpha,
		})
	}

	return Report{Floor: floor, Records: records}
}

// round rounds v to places decimals, ties to even. Non-finite values are
// returned unchanged.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).RoundBank(places).Float64()
	return f
}
