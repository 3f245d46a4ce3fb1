package connection

// Orientation is one of "H", "V", "D" or "U" (case insensitive).
type ReqPlaceShip struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
}
