package connection

import (
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateBoard struct {
	BoardUuid  string `json:"board_uuid"`
	GridSize   int    `json:"grid_size"`
	ShipLength int    `json:"ship_length"`
}

type RespPlaceShip struct {
	Accepted    bool             `json:"accepted"`
	Cells       []mb.Coordinates `json:"cells,omitempty"`
	Reason      string           `json:"reason,omitempty"`
	ShipsPlaced int              `json:"ships_placed"`
}

type RespRenderBoard struct {
	Grid     [][]int `json:"grid"`
	Rendered string  `json:"rendered"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
