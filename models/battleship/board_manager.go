package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

type BoardManager interface {
	CreateBoard() *Board
	GetBoard(boardUuid string) (*Board, error)
	TerminateBoard(boardUuid string)
	CountBoards() int
}

type BattleshipBoardManager struct {
	boards   map[string]*Board
	gridSize int
	mu       sync.RWMutex
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

// A non positive gridSize falls back to GridSizeDefault.
func NewBattleshipBoardManager(gridSize int) *BattleshipBoardManager {
	if gridSize <= 0 {
		gridSize = GridSizeDefault
	}

	return &BattleshipBoardManager{
		boards:   make(map[string]*Board, 10),
		gridSize: gridSize,
	}
}

func (bbm *BattleshipBoardManager) CreateBoard() *Board {
	boardUuid := uuid.NewString()[:6]
	board := newBoard(boardUuid, bbm.gridSize)

	bbm.mu.Lock()
	bbm.boards[boardUuid] = board
	bbm.mu.Unlock()

	return board
}

func (bbm *BattleshipBoardManager) GetBoard(boardUuid string) (*Board, error) {
	bbm.mu.RLock()
	board, prs := bbm.boards[boardUuid]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardUuid)
	}

	return board, nil
}

func (bbm *BattleshipBoardManager) TerminateBoard(boardUuid string) {
	bbm.mu.Lock()
	delete(bbm.boards, boardUuid)
	bbm.mu.Unlock()
}

func (bbm *BattleshipBoardManager) CountBoards() int {
	bbm.mu.RLock()
	defer bbm.mu.RUnlock()
	return len(bbm.boards)
}
