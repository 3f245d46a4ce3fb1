package battleship

import (
	"bytes"
	"testing"
)

func TestNewGrid(t *testing.T) {
	grid := NewGrid(GridSizeDefault)
	if grid.Size() != GridSizeDefault {
		t.Fatalf("expected size: %d\tgot: %d", GridSizeDefault, grid.Size())
	}
	for x := range grid {
		if len(grid[x]) != GridSizeDefault {
			t.Fatalf("expected row length: %d\tgot: %d", GridSizeDefault, len(grid[x]))
		}
		for y := range grid[x] {
			if grid[x][y] != PositionStateEmpty {
				t.Fatalf("expected empty cell\tx: %d\ty: %d", x, y)
			}
		}
	}
}

func TestGridInBounds(t *testing.T) {
	grid := NewGrid(GridSizeDefault)
	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{9, 9, true},
		{0, 9, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 10, false},
	}

	for _, test := range tests {
		if got := grid.InBounds(test.x, test.y); got != test.expected {
			t.Fatalf("InBounds(%d, %d) expected: %t\tgot: %t", test.x, test.y, test.expected, got)
		}
	}
}

func TestGridMarkOccupied(t *testing.T) {
	grid := NewGrid(GridSizeDefault)
	grid.MarkOccupied(2, 3)

	if !grid.IsOccupied(2, 3) {
		t.Fatal("expected cell to be occupied")
	}
	if grid.IsOccupied(3, 2) {
		t.Fatal("expected transposed cell to stay empty")
	}
	if grid[2][3] != PositionStateOccupied {
		t.Fatalf("expected state: %d\tgot: %d", PositionStateOccupied, grid[2][3])
	}
}

func TestGridAccessOutOfBoundsPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(g Grid)
	}{
		{name: "is occupied", fn: func(g Grid) { g.IsOccupied(10, 0) }},
		{name: "mark occupied", fn: func(g Grid) { g.MarkOccupied(0, -1) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic for out of bound access")
				}
			}()
			test.fn(NewGrid(GridSizeDefault))
		})
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	grid := NewGrid(4)
	clone := grid.Clone()
	clone.MarkOccupied(1, 1)

	if grid.IsOccupied(1, 1) {
		t.Fatal("mutating the clone changed the original grid")
	}
	if grid.Equal(clone) {
		t.Fatal("expected grids to differ")
	}
}

func TestGridRender(t *testing.T) {
	grid := NewGrid(3)
	grid.MarkOccupied(1, 0)
	grid.MarkOccupied(1, 1)
	grid.MarkOccupied(1, 2)

	expected := "  0 1 2 \n" +
		"0 0 0 0 \n" +
		"1 3 3 3 \n" +
		"2 0 0 0 \n"

	if got := grid.Render(); got != expected {
		t.Fatalf("expected render:\n%q\tgot:\n%q", expected, got)
	}

	var buf bytes.Buffer
	n, err := grid.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(expected)) || buf.String() != expected {
		t.Fatalf("expected %d bytes %q\tgot: %d bytes %q", len(expected), expected, n, buf.String())
	}
}

func TestGridRenderDefaultSize(t *testing.T) {
	grid := NewGrid(GridSizeDefault)
	lines := bytes.Split([]byte(grid.Render()), []byte("\n"))

	// header + 10 rows + empty string after the last newline
	if len(lines) != GridSizeDefault+2 {
		t.Fatalf("expected lines: %d\tgot: %d", GridSizeDefault+2, len(lines))
	}
	if string(lines[0]) != "  0 1 2 3 4 5 6 7 8 9 " {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if string(lines[10]) != "9 0 0 0 0 0 0 0 0 0 0 " {
		t.Fatalf("unexpected last row: %q", lines[10])
	}
}
