// Package economy loads the fiat datasets embedded in the binary.
package economy

import (
	"embed"
	"fmt"
	"math"
	"strings"

	"github.com/dshills/genesisdiag/internal/diagnosis"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultName is the economy diagnosed when none is selected.
const DefaultName = "sample"

// Economy is a named batch of actors.
type Economy struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Actors      []diagnosis.Actor `yaml:"actors"`
}

// LoadBuiltin loads and validates a built-in economy by name.
func LoadBuiltin(name string) (*Economy, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("economy.LoadBuiltin: unknown economy %q: %w", name, err)
	}
	e, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("economy.LoadBuiltin: %q: %w", name, err)
	}
	return e, nil
}

// Parse decodes a YAML economy document and validates it.
func Parse(data []byte) (*Economy, error) {
	var e Economy
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Validate rejects actors without a name or with a volume that is
// negative or not finite.
func (e *Economy) Validate() error {
	for i, a := range e.Actors {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("actors[%d]: name is required", i)
		}
		if math.IsNaN(a.Volume) || math.IsInf(a.Volume, 0) {
			return fmt.Errorf("actors[%d] (%s): volume must be finite", i, a.Name)
		}
		if a.Volume < 0 {
			return fmt.Errorf("actors[%d] (%s): volume must be non-negative, got %v", i, a.Name, a.Volume)
		}
	}
	return nil
}

// List returns the names of all built-in economies.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
