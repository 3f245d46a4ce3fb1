package error

import "fmt"

const (
	ConstErrPlacementFailed = "ship placement rejected"
)

// Rejection codes of a placement. All of them are ordinary outcomes
// reported back to the caller.
const (
	RejectOutOfBounds uint8 = iota + 1
	RejectOverlap
	RejectInvalidOrientation
)

var (
	ErrOutOfBounds        = PlacementErr{code: RejectOutOfBounds}
	ErrOverlap            = PlacementErr{code: RejectOverlap}
	ErrInvalidOrientation = PlacementErr{code: RejectInvalidOrientation}
)

type PlacementErr struct {
	code uint8
	x    int
	y    int
	desc string
}

func NewPlacementErr(code uint8, x, y int) PlacementErr {
	return PlacementErr{code: code, x: x, y: y}
}

func (p PlacementErr) AddDesc(desc string) PlacementErr {
	p.desc = desc
	return p
}

func (p PlacementErr) Code() uint8 {
	return p.code
}

// Cell returns the first cell that made the placement fail.
func (p PlacementErr) Cell() (int, int) {
	return p.x, p.y
}

// Reason is the wire friendly name of the rejection code.
func (p PlacementErr) Reason() string {
	switch p.code {
	case RejectOutOfBounds:
		return "out_of_bounds"
	case RejectOverlap:
		return "overlap"
	case RejectInvalidOrientation:
		return "invalid_orientation"
	default:
		return "unknown"
	}
}

func (p PlacementErr) Error() string {
	switch p.code {
	case RejectOutOfBounds:
		return fmt.Sprintf("%s: cell out of grid bound\tx: %d\ty: %d", ConstErrPlacementFailed, p.x, p.y)
	case RejectOverlap:
		return fmt.Sprintf("%s: cell already occupied by another ship\tx: %d\ty: %d", ConstErrPlacementFailed, p.x, p.y)
	case RejectInvalidOrientation:
		return fmt.Sprintf("%s: invalid orientation %s", ConstErrPlacementFailed, p.desc)
	default:
		return fmt.Sprintf("%s: code %d", ConstErrPlacementFailed, p.code)
	}
}

// Is matches on the rejection code only, so errors.Is(err, ErrOverlap)
// holds no matter which cell overlapped.
func (p PlacementErr) Is(target error) bool {
	t, ok := target.(PlacementErr)
	if !ok {
		return false
	}
	return t.code == p.code
}

func ErrCellOutOfGridBound(x, y int) error {
	return fmt.Errorf("cell is out of grid bound\tx: %d\ty: %d", x, y)
}

func ErrInvalidGridSize(size int) error {
	return fmt.Errorf("grid size must be positive, got: %d", size)
}

func ErrBoardNotExists(boardUuid string) error {
	return fmt.Errorf("board with this uuid does not exist, uuid: %s", boardUuid)
}

func ErrBoardNotCreated(sessionId string) error {
	return fmt.Errorf("no board is created for this session yet, session id: %s", sessionId)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}
