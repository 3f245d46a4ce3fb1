package battleship

import (
	"fmt"
	"io"
	"strings"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const GridSizeDefault int = 10

// These codes are what the rendered grid prints for each cell,
// keep them as they are.
const (
	PositionStateEmpty    uint8 = 0
	PositionStateOccupied uint8 = 3
)

// X is the row and Y is the column.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

func (g Grid) Size() int {
	return len(g)
}

func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < len(g) && y >= 0 && y < len(g)
}

// Callers must check InBounds first; an out of bound
// cell is a programming error and panics.
func (g Grid) IsOccupied(x, y int) bool {
	g.mustBeInBounds(x, y)
	return g[x][y] == PositionStateOccupied
}

func (g Grid) MarkOccupied(x, y int) {
	g.mustBeInBounds(x, y)
	g[x][y] = PositionStateOccupied
}

func (g Grid) mustBeInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(cerr.ErrCellOutOfGridBound(x, y))
	}
}

func (g Grid) OccupiedCells() []Coordinates {
	cells := make([]Coordinates, 0)
	for x := range g {
		for y := range g[x] {
			if g[x][y] == PositionStateOccupied {
				cells = append(cells, NewCoordinates(x, y))
			}
		}
	}
	return cells
}

// States copies the cells into ints for JSON responses.
func (g Grid) States() [][]int {
	states := make([][]int, len(g))
	for x := range g {
		states[x] = make([]int, len(g[x]))
		for y := range g[x] {
			states[x][y] = int(g[x][y])
		}
	}
	return states
}

func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for i := range g {
		clone[i] = make([]uint8, len(g[i]))
		copy(clone[i], g[i])
	}
	return clone
}

func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Render returns the console view of the grid. The first line holds the
// column indexes, every other line starts with its row index.
func (g Grid) Render() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

func (g Grid) WriteTo(w io.Writer) (int64, error) {
	var written int64

	write := func(format string, a ...any) error {
		n, err := fmt.Fprintf(w, format, a...)
		written += int64(n)
		return err
	}

	if err := write("  "); err != nil {
		return written, err
	}
	for y := 0; y < len(g); y++ {
		if err := write("%d ", y); err != nil {
			return written, err
		}
	}
	if err := write("\n"); err != nil {
		return written, err
	}

	for x := range g {
		if err := write("%d ", x); err != nil {
			return written, err
		}
		for y := range g[x] {
			if err := write("%d ", g[x][y]); err != nil {
				return written, err
			}
		}
		if err := write("\n"); err != nil {
			return written, err
		}
	}
	return written, nil
}
