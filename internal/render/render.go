// Package render produces the console tables printed by genesisdiag.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/genesisdiag/internal/diagnosis"
	"github.com/dshills/genesisdiag/internal/physics"
)

// SeparatorWidth is the length of the dashed line under a table header.
const SeparatorWidth = 55

const rowFormat = "%-20s | %-10s | %-10s | %s\n"

// Table renders diagnosis records as a fixed-width text table, one row per
// record in the given order.
func Table(records []diagnosis.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, rowFormat, "Actor", "Fiat Vol", "Onto Val", "Alpha")
	b.WriteString(strings.Repeat("-", SeparatorWidth))
	b.WriteString("\n")

	for _, r := range records {
		fmt.Fprintf(&b, rowFormat,
			r.Name, formatNumber(r.Volume), formatReal(r.Value), formatReal(r.Coefficient))
	}

	return b.String()
}

// Categories renders the coefficient table, ending with the default arm
// that applies to any other label.
func Categories() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-16s | %-6s | %s\n", "Category", "Alpha", "Persistence")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	for _, c := range physics.Categories() {
		fmt.Fprintf(&b, "%-16s | %-6s | %s\n",
			c, formatReal(physics.Coefficient(c)), formatReal(physics.Persistence(c)))
	}
	fmt.Fprintf(&b, "%-16s | %-6s | %s\n",
		"(other)", formatReal(physics.DefaultCoefficient), formatReal(physics.DefaultPersistence))

	return b.String()
}

// formatNumber prints v in its shortest form: 5000, 5000.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatReal prints v in its shortest form but always with a fractional
// part: 1.0, 0.8.
func formatReal(v float64) string {
	s := formatNumber(v)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
