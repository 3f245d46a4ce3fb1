package battleship

import (
	"errors"
	"sync"
	"testing"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		code     string
		expected Orientation
	}{
		{"H", OrientationHorizontal},
		{"h", OrientationHorizontal},
		{"V", OrientationVertical},
		{"v", OrientationVertical},
		{"D", OrientationDiagonalDown},
		{"u", OrientationDiagonalUp},
		{"X", OrientationInvalid},
		{"", OrientationInvalid},
		{"HV", OrientationInvalid},
	}

	for _, test := range tests {
		got := ParseOrientationString(test.code)
		if got != test.expected {
			t.Fatalf("code %q expected: %s\tgot: %s", test.code, test.expected, got)
		}
		if got.IsValid() != (test.expected != OrientationInvalid) {
			t.Fatalf("code %q: unexpected validity %t", test.code, got.IsValid())
		}
	}
}

func TestBoardManager(t *testing.T) {
	bbm := NewBattleshipBoardManager(0)
	board := bbm.CreateBoard()

	if board.GridSize() != GridSizeDefault {
		t.Fatalf("expected grid size: %d\tgot: %d", GridSizeDefault, board.GridSize())
	}

	found, err := bbm.GetBoard(board.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != board {
		t.Fatal("expected the same board back")
	}
	if bbm.CountBoards() != 1 {
		t.Fatalf("expected boards: 1\tgot: %d", bbm.CountBoards())
	}

	bbm.TerminateBoard(board.Uuid())
	if _, err := bbm.GetBoard(board.Uuid()); err == nil {
		t.Fatal("expected error for terminated board")
	}
}

func TestBoardPlaceShip(t *testing.T) {
	board := NewBattleshipBoardManager(6).CreateBoard()

	if _, err := board.PlaceShip(0, 0, OrientationDiagonalDown); err != nil {
		t.Fatal(err)
	}
	if _, err := board.PlaceShip(0, 4, OrientationHorizontal); !errors.Is(err, cerr.ErrOutOfBounds) {
		t.Fatalf("expected out of bounds\tgot: %v", err)
	}
	if board.ShipsPlaced() != 1 {
		t.Fatalf("expected ships placed: 1\tgot: %d", board.ShipsPlaced())
	}

	snapshot := board.Snapshot()
	snapshot.MarkOccupied(5, 5)
	if board.Snapshot().IsOccupied(5, 5) {
		t.Fatal("snapshot must not share memory with the board")
	}
}

// Every goroutine tries the same cells; exactly one placement may win.
func TestBoardPlaceShipConcurrent(t *testing.T) {
	board := NewBattleshipBoardManager(GridSizeDefault).CreateBoard()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := board.PlaceShip(4, 4, OrientationVertical); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Fatalf("expected accepted placements: 1\tgot: %d", accepted)
	}
	if got := len(board.Snapshot().OccupiedCells()); got != ShipLength {
		t.Fatalf("expected occupied cells: %d\tgot: %d", ShipLength, got)
	}
}
