// Package diagnosis re-scores a batch of fiat actors against the batch's
// thermodynamic floor.
package diagnosis

import "github.com/dshills/genesisdiag/internal/physics"

// Actor is one input record: a named economic actor and its fiat volume.
type Actor struct {
	Name   string           `yaml:"name"`
	Type   physics.Category `yaml:"type"`
	Volume float64          `yaml:"vol"`
}

// Record is the diagnosis of a single actor.
type Record struct {
	Name        string
	Volume      float64
	Value       float64
	Coefficient float64
}

// Report is the result of diagnosing one batch.
type Report struct {
	// Floor is the batch baseline every volume was normalized against.
	Floor   float64
	Records []Record
}
