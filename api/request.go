package api

import (
	"encoding/json"
	"errors"
	"log"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

type RequestHandler interface {
	HandleCreateBoard(boardManager mb.BoardManager) (*mb.Board, mc.Message[mc.RespCreateBoard])
	HandlePlaceShip(board *mb.Board) mc.Message[mc.RespPlaceShip]
	HandleRenderBoard(board *mb.Board) mc.Message[mc.RespRenderBoard]
}

// Every incoming valid request will have this structure.
// The request is then handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return Request{}
	}

	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleCreateBoard(boardManager mb.BoardManager) (*mb.Board, mc.Message[mc.RespCreateBoard]) {
	board := boardManager.CreateBoard()

	resp := mc.NewMessage[mc.RespCreateBoard](mc.CodeCreateBoard)
	resp.AddPayload(mc.RespCreateBoard{
		BoardUuid:  board.Uuid(),
		GridSize:   board.GridSize(),
		ShipLength: mb.ShipLength,
	})
	return board, resp
}

// A rejected placement is still a successful request: the response
// carries accepted=false, the reason and the error details.
func (r Request) HandlePlaceShip(board *mb.Board) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	var reqPlaceShip mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &reqPlaceShip); err != nil {
		resp.AddError(err.Error(), "invalid place ship payload")
		return resp
	}

	p := reqPlaceShip.Payload
	cells, err := board.PlaceShip(p.X, p.Y, mb.ParseOrientationString(p.Orientation))
	if err != nil {
		var placementErr cerr.PlacementErr
		if errors.As(err, &placementErr) {
			resp.AddPayload(mc.RespPlaceShip{
				Accepted:    false,
				Reason:      placementErr.Reason(),
				ShipsPlaced: board.ShipsPlaced(),
			})
		}
		resp.AddError(err.Error(), cerr.ConstErrPlacementFailed)
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{
		Accepted:    true,
		Cells:       cells,
		ShipsPlaced: board.ShipsPlaced(),
	})
	return resp
}

func (r Request) HandleRenderBoard(board *mb.Board) mc.Message[mc.RespRenderBoard] {
	snapshot := board.Snapshot()

	resp := mc.NewMessage[mc.RespRenderBoard](mc.CodeRenderBoard)
	resp.AddPayload(mc.RespRenderBoard{
		Grid:     snapshot.States(),
		Rendered: snapshot.Render(),
	})
	return resp
}
