package economy

import (
	"strings"
	"testing"

	"github.com/dshills/genesisdiag/internal/physics"
)

func TestLoadBuiltinAll(t *testing.T) {
	names := []string{"sample", "village", "empty"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			e, err := LoadBuiltin(name)
			if err != nil {
				t.Fatalf("LoadBuiltin(%q): %v", name, err)
			}
			if e.Name != name {
				t.Errorf("Name = %q, want %q", e.Name, name)
			}
			if e.Description == "" {
				t.Error("economy description is empty")
			}
		})
	}
}

func TestLoadBuiltinSample(t *testing.T) {
	e, err := LoadBuiltin(DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Actors) != 3 {
		t.Fatalf("expected 3 actors, got %d", len(e.Actors))
	}
	first := e.Actors[0]
	if first.Name != "Hans (Farmer)" || first.Type != physics.CategoryPhysicalCrop || first.Volume != 5000 {
		t.Errorf("unexpected first actor: %+v", first)
	}
	if e.Actors[2].Volume != 50000 {
		t.Errorf("Bob volume = %v, want 50000", e.Actors[2].Volume)
	}
}

func TestLoadBuiltinNotFound(t *testing.T) {
	_, err := LoadBuiltin("atlantis")
	if err == nil {
		t.Fatal("expected error for unknown economy")
	}
	if !strings.Contains(err.Error(), "atlantis") {
		t.Errorf("error should name the economy: %v", err)
	}
}

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	required := map[string]bool{"sample": false, "village": false, "empty": false}
	for _, n := range names {
		required[n] = true
	}
	for name, found := range required {
		if !found {
			t.Errorf("missing required economy: %s", name)
		}
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"negative volume", "actors:\n  - {name: a, type: SERVICE, vol: -1}\n", "non-negative"},
		{"missing name", "actors:\n  - {type: SERVICE, vol: 1}\n", "name is required"},
		{"nan volume", "actors:\n  - {name: a, type: SERVICE, vol: .nan}\n", "finite"},
		{"bad yaml", "actors: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseKeepsUnknownCategory(t *testing.T) {
	e, err := Parse([]byte("actors:\n  - {name: q, type: MINING, vol: 10}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if e.Actors[0].Type != "MINING" {
		t.Errorf("Type = %q, want MINING", e.Actors[0].Type)
	}
	if e.Actors[0].Type.Valid() {
		t.Error("MINING should not be a known category")
	}
}
