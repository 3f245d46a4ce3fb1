// Package scenario loads the sequence of ship placements the
// placement demo runs against a fresh grid.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

type Placement struct {
	Name        string `yaml:"name"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Orientation string `yaml:"orientation"`
}

// Unknown codes are kept as OrientationInvalid so the
// engine can reject them like any other placement.
func (p Placement) ParsedOrientation() mb.Orientation {
	return mb.ParseOrientationString(p.Orientation)
}

type Scenario struct {
	GridSize   int         `yaml:"grid_size"`
	Placements []Placement `yaml:"placements"`
}

// Default is the built-in demonstration sequence.
func Default() Scenario {
	return Scenario{
		GridSize: mb.GridSizeDefault,
		Placements: []Placement{
			{Name: "ship 1", X: 0, Y: 0, Orientation: "H"},
			{Name: "ship 2", X: 2, Y: 4, Orientation: "V"},
			{Name: "ship 3", X: 0, Y: 1, Orientation: "V"},
			{Name: "ship 4", X: 6, Y: 8, Orientation: "U"},
			{Name: "ship 5", X: 9, Y: 9, Orientation: "H"},
			{Name: "ship 6", X: 0, Y: 0, Orientation: "X"},
		},
	}
}

func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}

	if s.GridSize == 0 {
		s.GridSize = mb.GridSizeDefault
	}
	if s.GridSize < 0 {
		return Scenario{}, fmt.Errorf("grid_size must be positive, got: %d", s.GridSize)
	}

	for i := range s.Placements {
		if s.Placements[i].Name == "" {
			s.Placements[i].Name = fmt.Sprintf("ship %d", i+1)
		}
	}
	return s, nil
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}
