package room

import (
	"errors"
	"sync"
	"time"

	"gomoku/internal/board"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrInvalidSize  = errors.New("invalid board size")
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrInvalidSide  = errors.New("side must be black or white")
)

// Room owns one board. All access goes through the room's lock since the
// board itself does no synchronization.
type Room struct {
	mu sync.Mutex

	ID        string
	Code      string
	Board     *board.Board
	Turn      board.Side
	Moves     int
	CreatedAt time.Time
}

// View is a point-in-time copy of a room that is safe to hand out.
type View struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Board     *board.Board `json:"board"`
	Turn      board.Side   `json:"turn"`
	Moves     int          `json:"moves"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (r *Room) view() View {
	return View{
		ID:        r.ID,
		Code:      r.Code,
		Board:     r.Board.Clone(),
		Turn:      r.Turn,
		Moves:     r.Moves,
		CreatedAt: r.CreatedAt,
	}
}

// Store keeps rooms by code.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string) bool
	Codes() []string
}
