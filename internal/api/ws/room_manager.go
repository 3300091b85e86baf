package ws

import (
	"gomoku/internal/board"
	"gomoku/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (room.View, error)
	Play(roomCode string, c board.Cell, side board.Side) (room.View, error)
}
