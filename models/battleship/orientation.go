package battleship

// The zero value is not a valid orientation.
type Orientation uint8

const (
	OrientationInvalid Orientation = iota
	OrientationHorizontal
	OrientationVertical
	OrientationDiagonalDown
	OrientationDiagonalUp
)

// ParseOrientation reads the single character codes used by clients
// and scenario files, case insensitive. Anything it does not
// recognize comes back as OrientationInvalid.
func ParseOrientation(code rune) Orientation {
	switch code {
	case 'H', 'h':
		return OrientationHorizontal
	case 'V', 'v':
		return OrientationVertical
	case 'D', 'd':
		return OrientationDiagonalDown
	case 'U', 'u':
		return OrientationDiagonalUp
	default:
		return OrientationInvalid
	}
}

// ParseOrientationString expects exactly one character.
func ParseOrientationString(code string) Orientation {
	runes := []rune(code)
	if len(runes) != 1 {
		return OrientationInvalid
	}
	return ParseOrientation(runes[0])
}

func (o Orientation) IsValid() bool {
	return o >= OrientationHorizontal && o <= OrientationDiagonalUp
}

// Delta is the change of row and column for every step of a ship.
func (o Orientation) Delta() (dx, dy int, ok bool) {
	switch o {
	case OrientationHorizontal:
		return 0, 1, true
	case OrientationVertical:
		return 1, 0, true
	case OrientationDiagonalDown:
		return 1, 1, true
	case OrientationDiagonalUp:
		return 1, -1, true
	default:
		return 0, 0, false
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	case OrientationDiagonalDown:
		return "diagonal down"
	case OrientationDiagonalUp:
		return "diagonal up"
	default:
		return "invalid"
	}
}
