// Command placement runs a sequence of ship placements against a fresh
// grid, reports every outcome and prints the final grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/saeidalz13/battleship-placement/internal/scenario"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

func main() {
	var scenarioPath string
	flag.StringVar(&scenarioPath, "scenario", "", "yaml file with the placements to run (default: built-in demo)")
	flag.Parse()

	s := scenario.Default()
	if scenarioPath != "" {
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		s = loaded
	}

	// Rejected placements are reported, never fatal.
	if _, err := run(os.Stdout, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run returns the final grid so callers can inspect it.
func run(w io.Writer, s scenario.Scenario) (mb.Grid, error) {
	grid := mb.NewGrid(s.GridSize)

	if _, err := fmt.Fprintln(w, "--- Ship Placement ---"); err != nil {
		return grid, err
	}

	for i, p := range s.Placements {
		orientation := p.ParsedOrientation()

		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Trying to place %s (%s) at (%d, %d)...\n", p.Name, orientation, p.X, p.Y)

		if _, err := mb.Place(grid, p.X, p.Y, orientation); err != nil {
			fmt.Fprintf(w, "Failed to place %s: %v\n", p.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s placed successfully.\n", p.Name)
	}

	if _, err := fmt.Fprintln(w, "\n--- Final Grid ---"); err != nil {
		return grid, err
	}
	_, err := grid.WriteTo(w)
	return grid, err
}
