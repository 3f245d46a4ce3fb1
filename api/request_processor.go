package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-placement/db/sqlc"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
	"github.com/sqlc-dev/pqtype"
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	boardManager   mb.BoardManager
	analytics      *sqlc.AnalyticsManager
	ipnet          net.IPNet
	upgrader       websocket.Upgrader
}

// analytics may be nil, placements are then not counted.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	boardManager mb.BoardManager,
	analytics *sqlc.AnalyticsManager,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		boardManager:   boardManager,
		analytics:      analytics,
		upgrader: websocket.Upgrader{
			// good average time since this is not a high-latency operation such as video streaming
			HandshakeTimeout: time.Second * 5,

			// placement messages are tiny, a rendered 10x10 grid is ~250 bytes
			ReadBufferSize:  1024,
			WriteBufferSize: 2048,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}

	rp.ipnet = getServerIpNet()
	return rp
}

// WithCheckOrigin replaces the default allow-all origin check.
func (rp RequestProcessor) WithCheckOrigin(checkOrigin func(r *http.Request) bool) RequestProcessor {
	rp.upgrader.CheckOrigin = checkOrigin
	return rp
}

// First up, non loopback IPv4 of this machine. Falls back
// to the loopback address so analytics always has a key.
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list interfaces:", err)
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			log.Println("failed to list interface addrs:", err)
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	log.Println("no external ipv4 found, using loopback for analytics")
	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := rp.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))
}

func (rp RequestProcessor) recordPlacement(accepted bool) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	// analytics never decides the outcome of a placement
	if err := rp.analytics.RecordPlacement(ctx, pqtype.Inet{IPNet: rp.ipnet, Valid: true}, accepted); err != nil {
		log.Println(err)
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if board := rp.sessionManager.GetSessionBoard(session); board != nil {
			rp.boardManager.TerminateBoard(board.Uuid())
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Println("session terminated:", sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		board := rp.sessionManager.GetSessionBoard(session)

		switch code {

		// A session owns one board at a time; asking for a
		// new one drops the previous board with its ships.
		case mc.CodeCreateBoard:
			if board != nil {
				rp.boardManager.TerminateBoard(board.Uuid())
			}

			newBoard, respMsg := NewRequest(payload).HandleCreateBoard(rp.boardManager)
			rp.sessionManager.SetSessionBoard(session, newBoard)

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			if board == nil {
				if err := rp.writeBoardNotCreated(session); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandlePlaceShip(board)
			if respMsg.Payload.Accepted || respMsg.Payload.Reason != "" {
				rp.recordPlacement(respMsg.Payload.Accepted)
			}
			if respMsg.Error != nil {
				log.Printf("placement rejected [%s]: %s\n", sessionId, respMsg.Error.ErrorDetails)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeRenderBoard:
			if board == nil {
				if err := rp.writeBoardNotCreated(session); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandleRenderBoard(board)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

func (rp RequestProcessor) writeBoardNotCreated(session *mc.Session) error {
	msg := mc.NewMessage[mc.NoPayload](mc.CodeBoardNotCreated)
	msg.AddError(cerr.ErrBoardNotCreated(session.Id()).Error(), "create a board first")
	return rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON)
}
