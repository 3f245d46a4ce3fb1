package battleship

import "sync"

// Board is a grid owned by a single setup session. PlaceShip holds the
// board lock from validation to commit so two placements can never
// interleave on the same grid.
type Board struct {
	uuid        string
	mu          sync.Mutex
	grid        Grid
	shipsPlaced int
}

func newBoard(uuid string, gridSize int) *Board {
	return &Board{
		uuid: uuid,
		grid: NewGrid(gridSize),
	}
}

func (b *Board) Uuid() string {
	return b.uuid
}

func (b *Board) GridSize() int {
	return b.grid.Size()
}

func (b *Board) PlaceShip(x, y int, orientation Orientation) ([]Coordinates, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cells, err := Place(b.grid, x, y, orientation)
	if err != nil {
		return nil, err
	}
	b.shipsPlaced++
	return cells, nil
}

func (b *Board) ShipsPlaced() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shipsPlaced
}

// Snapshot returns a copy of the grid that is safe to read
// while other placements go on.
func (b *Board) Snapshot() Grid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Clone()
}

func (b *Board) Render() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Render()
}
