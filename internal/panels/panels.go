// Package panels holds the dashboard group definitions.
package panels

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"SectorStrength/internal/model"
)

// Builtin returns a copy of the compiled-in panel definitions.
func Builtin() []model.Group {
	out := make([]model.Group, len(builtin))
	for i, g := range builtin {
		g.Symbols = slices.Clone(g.Symbols)
		out[i] = g
	}
	return out
}

type file struct {
	Panels []model.Group `yaml:"panels"`
}

// Load reads panel definitions from a YAML file. An empty path or a missing file
// yields the builtin definitions.
func Load(path string) ([]model.Group, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Builtin(), nil
		}
		return nil, fmt.Errorf("read panels: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse panels: %w", err)
	}
	for i := range f.Panels {
		if f.Panels[i].Key == "" {
			f.Panels[i].Key = fmt.Sprintf("panel_%02d", i+1)
		}
	}
	if err := Validate(f.Panels); err != nil {
		return nil, fmt.Errorf("panels %s: %w", path, err)
	}
	return f.Panels, nil
}

// Validate checks that keys are unique and every group has a title, a base
// symbol and at least one member.
func Validate(groups []model.Group) error {
	if len(groups) == 0 {
		return errors.New("no panels defined")
	}
	keys := make(map[string]bool, len(groups))
	for _, g := range groups {
		if keys[g.Key] {
			return fmt.Errorf("duplicate key %q", g.Key)
		}
		keys[g.Key] = true
		switch {
		case g.Title == "":
			return fmt.Errorf("%s: title is required", g.Key)
		case g.BaseSymbol == "":
			return fmt.Errorf("%s: base_symbol is required", g.Key)
		case len(g.Symbols) == 0:
			return fmt.Errorf("%s: no symbols", g.Key)
		}
	}
	return nil
}
