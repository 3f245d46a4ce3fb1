package battleship

import (
	"strconv"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const ShipLength int = 3

// ShipCells returns the cells a ship starting at (x, y) would cover,
// origin first. Bounds are not checked here.
func ShipCells(x, y int, orientation Orientation) ([]Coordinates, error) {
	dx, dy, ok := orientation.Delta()
	if !ok {
		return nil, cerr.NewPlacementErr(cerr.RejectInvalidOrientation, x, y).
			AddDesc("code: " + strconv.Itoa(int(orientation)))
	}

	cells := make([]Coordinates, 0, ShipLength)
	for step := 0; step < ShipLength; step++ {
		cells = append(cells, NewCoordinates(x+step*dx, y+step*dy))
	}
	return cells, nil
}

// Place puts a ship on the grid if every one of its cells is inside the
// grid and empty. A rejected placement leaves the grid untouched; the
// returned error is a cerr.PlacementErr.
func Place(grid Grid, x, y int, orientation Orientation) ([]Coordinates, error) {
	cells, err := ShipCells(x, y, orientation)
	if err != nil {
		return nil, err
	}

	if err := validateCells(grid, cells); err != nil {
		return nil, err
	}

	for _, c := range cells {
		grid.MarkOccupied(c.X, c.Y)
	}
	return cells, nil
}

func validateCells(grid Grid, cells []Coordinates) error {
	for _, c := range cells {
		if !grid.InBounds(c.X, c.Y) {
			return cerr.NewPlacementErr(cerr.RejectOutOfBounds, c.X, c.Y)
		}
		if grid.IsOccupied(c.X, c.Y) {
			return cerr.NewPlacementErr(cerr.RejectOverlap, c.X, c.Y)
		}
	}
	return nil
}

// CanPlace runs the same checks as Place without touching the grid.
func CanPlace(grid Grid, x, y int, orientation Orientation) bool {
	cells, err := ShipCells(x, y, orientation)
	if err != nil {
		return false
	}
	return validateCells(grid, cells) == nil
}
