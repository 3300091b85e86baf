package room

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gomoku/internal/board"
	"gomoku/internal/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "room")

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config) *Manager {
	return &Manager{
		store: s,
		cfg:   cfg,
		hub:   nopBroadcaster{},
	}
}

func (m *Manager) SetBroadcaster(b Broadcaster) {
	if b == nil {
		b = nopBroadcaster{}
	}
	m.hub = b
}

// CreateRoom opens a room with an empty board. Zero dimensions fall back to
// the configured board size; neither side may exceed the configured maximum.
func (m *Manager) CreateRoom(rows, cols int) (View, error) {
	if rows == 0 {
		rows = m.cfg.BoardRows
	}
	if cols == 0 {
		cols = m.cfg.BoardCols
	}
	limit := m.maxSize()
	if rows <= 0 || cols <= 0 || rows > limit || cols > limit {
		return View{}, fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidSize, rows, cols, limit)
	}

	r := &Room{
		ID:        uuid.NewString(),
		Code:      m.newCode(),
		Board:     board.New(rows, cols),
		Turn:      board.Black,
		CreatedAt: time.Now(),
	}
	m.store.SaveRoom(r)
	log.WithFields(logrus.Fields{"code": r.Code, "rows": rows, "cols": cols}).Info("room created")
	return r.view(), nil
}

func (m *Manager) maxSize() int {
	if m.cfg.MaxBoardSize > 0 {
		return m.cfg.MaxBoardSize
	}
	return config.DefaultMaxBoardSize
}

func (m *Manager) newCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

func (m *Manager) room(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return r, nil
}

// Codes lists every open room, sorted.
func (m *Manager) Codes() []string {
	codes := m.store.Codes()
	sort.Strings(codes)
	return codes
}

func (m *Manager) Get(code string) (View, error) {
	r, err := m.room(code)
	if err != nil {
		return View{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view(), nil
}

func (m *Manager) Delete(code string) error {
	if !m.store.DeleteRoom(code) {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	m.hub.Broadcast(code, "room-closed", nil)
	return nil
}

// Play places a stone for the side to move. An Empty side means "whoever
// is on turn".
func (m *Manager) Play(code string, c board.Cell, side board.Side) (View, error) {
	r, err := m.room(code)
	if err != nil {
		return View{}, err
	}

	r.mu.Lock()
	if side == board.Empty {
		side = r.Turn
	}
	switch {
	case !side.IsStone():
		err = fmt.Errorf("%w: %s", ErrInvalidSide, side)
	case side != r.Turn:
		err = fmt.Errorf("%w: %s to move", ErrNotYourTurn, r.Turn)
	case !r.Board.InBounds(c):
		err = fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	case r.Board.At(c.Row, c.Col) != board.Empty:
		err = fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}
	if err != nil {
		r.mu.Unlock()
		log.WithFields(logrus.Fields{"code": code, "cell": c.String()}).WithError(err).Debug("move rejected")
		return View{}, err
	}

	r.Board.Move(c, side)
	r.Moves++
	r.Turn = side.Opponent()
	v := r.view()
	r.mu.Unlock()

	m.hub.Broadcast(code, "move", map[string]interface{}{
		"cell":     c,
		"side":     side,
		"nextTurn": v.Turn,
		"board":    v.Board,
	})
	return v, nil
}

// Clear empties the board and gives the move back to Black.
func (m *Manager) Clear(code string) (View, error) {
	return m.mutate(code, "cleared", func(r *Room) {
		r.Board.Clear()
		r.Turn = board.Black
		r.Moves = 0
	})
}

func (m *Manager) Rotate(code string) (View, error) {
	return m.mutate(code, "rotated", func(r *Room) {
		r.Board.Rotate()
	})
}

// Replace swaps the first region matching from with to.
func (m *Manager) Replace(code string, from, to *board.Board) (bool, View, error) {
	var replaced bool
	v, err := m.mutate(code, "replaced", func(r *Room) {
		replaced = r.Board.Replace(from, to)
	})
	return replaced, v, err
}

func (m *Manager) mutate(code, action string, fn func(r *Room)) (View, error) {
	r, err := m.room(code)
	if err != nil {
		return View{}, err
	}
	r.mu.Lock()
	fn(r)
	v := r.view()
	r.mu.Unlock()

	m.hub.Broadcast(code, action, map[string]interface{}{"board": v.Board})
	return v, nil
}

// Subboard extracts a region after checking that it lies on the board. The
// start cell must be on the board whenever either length is non-zero, and
// the far end of every non-zero axis must be too.
func (m *Manager) Subboard(code string, start board.Cell, h, v int) (*board.Board, error) {
	r, err := m.room(code)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if h != 0 || v != 0 {
		end := start.Translate(towardZero(h), towardZero(v))
		if !r.Board.InBounds(start) ||
			!within(end.Row, r.Board.Rows()) ||
			!within(end.Col, r.Board.Cols()) {
			return nil, fmt.Errorf("%w: %s..%s", ErrOutOfBounds, start, end)
		}
	}
	return r.Board.Subboard(start, h, v), nil
}

func within(i, n int) bool {
	return i >= 0 && i < n
}

// towardZero returns n moved one step closer to zero.
func towardZero(n int) int {
	switch {
	case n > 0:
		return n - 1
	case n < 0:
		return n + 1
	}
	return 0
}

// Find looks for pattern on the room board in any rotation.
func (m *Manager) Find(code string, pattern *board.Board) (*board.Board, bool, error) {
	r, err := m.room(code)
	if err != nil {
		return nil, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.Board.Exist(pattern)
	return match, ok, nil
}

func (m *Manager) Diff(code string, other *board.Board) ([]board.Cell, error) {
	r, err := m.room(code)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Board.Diff(other), nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
