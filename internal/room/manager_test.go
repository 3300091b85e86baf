package room_test

import (
	"sort"
	"sync"
	"testing"

	"gomoku/internal/board"
	"gomoku/internal/config"
	"gomoku/internal/room"
	"gomoku/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	room, action string
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) Broadcast(roomCode string, action string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{roomCode, action})
}

func newManager(t *testing.T) (*room.Manager, *recorder) {
	t.Helper()
	m := room.NewManager(store.NewMemoryStore(), config.Config{BoardRows: 15, BoardCols: 15})
	rec := &recorder{}
	m.SetBroadcaster(rec)
	return m, rec
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)

	v, err := m.CreateRoom(0, 0)
	require.NoError(t, err)
	assert.Len(t, v.Code, 6)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, 15, v.Board.Rows())
	assert.Equal(t, board.Black, v.Turn)

	v, err = m.CreateRoom(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Board.Rows())
	assert.Equal(t, 5, v.Board.Cols())

	_, err = m.CreateRoom(-1, 5)
	assert.ErrorIs(t, err, room.ErrInvalidSize)
}

func TestCreateRoomSizeCap(t *testing.T) {
	t.Parallel()

	capped := room.NewManager(store.NewMemoryStore(), config.Config{BoardRows: 15, BoardCols: 15, MaxBoardSize: 19})
	v, err := capped.CreateRoom(19, 19)
	require.NoError(t, err)
	assert.Equal(t, 19, v.Board.Rows())

	_, err = capped.CreateRoom(20, 5)
	assert.ErrorIs(t, err, room.ErrInvalidSize)
	_, err = capped.CreateRoom(5, 100000)
	assert.ErrorIs(t, err, room.ErrInvalidSize)

	m, _ := newManager(t)
	_, err = m.CreateRoom(config.DefaultMaxBoardSize+1, config.DefaultMaxBoardSize)
	assert.ErrorIs(t, err, room.ErrInvalidSize, "unset maximum falls back to the default")
}

func TestGetUnknownRoom(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)

	_, err := m.Get("NOPE")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestPlay(t *testing.T) {
	t.Parallel()
	m, rec := newManager(t)
	v, err := m.CreateRoom(5, 5)
	require.NoError(t, err)

	v, err = m.Play(v.Code, board.Cell{Row: 2, Col: 2}, board.Empty)
	require.NoError(t, err)
	assert.Equal(t, board.Black, v.Board.At(2, 2))
	assert.Equal(t, board.White, v.Turn)
	assert.Equal(t, 1, v.Moves)
	last, ok := v.Board.LastMove()
	require.True(t, ok)
	assert.Equal(t, board.Cell{Row: 2, Col: 2}, last)

	cases := []struct {
		name string
		cell board.Cell
		side board.Side
		want error
	}{
		{name: "wrong turn", cell: board.Cell{Row: 0, Col: 0}, side: board.Black, want: room.ErrNotYourTurn},
		{name: "wildcard", cell: board.Cell{Row: 0, Col: 0}, side: board.Wildcard, want: room.ErrInvalidSide},
		{name: "out of bounds", cell: board.Cell{Row: 5, Col: 0}, side: board.White, want: room.ErrOutOfBounds},
		{name: "occupied", cell: board.Cell{Row: 2, Col: 2}, side: board.White, want: room.ErrCellOccupied},
	}
	for _, tc := range cases {
		_, err := m.Play(v.Code, tc.cell, tc.side)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err = m.Play(v.Code, board.Cell{Row: 0, Col: 0}, board.White)
	require.NoError(t, err)

	assert.Equal(t, []event{{v.Code, "move"}, {v.Code, "move"}}, rec.events)
}

func TestViewIsSnapshot(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	v, err := m.CreateRoom(3, 3)
	require.NoError(t, err)

	v.Board.Set(0, 0, board.White)

	got, err := m.Get(v.Code)
	require.NoError(t, err)
	assert.Equal(t, board.Empty, got.Board.At(0, 0))
}

func TestClearResetsTurn(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	v, _ := m.CreateRoom(3, 3)
	_, err := m.Play(v.Code, board.Cell{Row: 1, Col: 1}, board.Black)
	require.NoError(t, err)

	v, err = m.Clear(v.Code)
	require.NoError(t, err)
	assert.Equal(t, 9, v.Board.Count(board.Empty))
	assert.Equal(t, board.Black, v.Turn)
	assert.Zero(t, v.Moves)
}

func TestSubboardBounds(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	v, _ := m.CreateRoom(3, 3)
	_, err := m.Play(v.Code, board.Cell{Row: 0, Col: 0}, board.Black)
	require.NoError(t, err)

	sub, err := m.Subboard(v.Code, board.Cell{Row: 1, Col: 1}, -2, -2)
	require.NoError(t, err)
	assert.Equal(t, []string{"..", ".B"}, sub.Lines())

	_, err = m.Subboard(v.Code, board.Cell{Row: 2, Col: 2}, 2, 1)
	assert.ErrorIs(t, err, room.ErrOutOfBounds)

	sub, err = m.Subboard(v.Code, board.Cell{Row: 9, Col: 9}, 0, 0)
	require.NoError(t, err)
	assert.True(t, sub.IsEmpty())

	sub, err = m.Subboard(v.Code, board.Cell{Row: 1, Col: 2}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, 0, sub.Cols())

	offGrid := []struct {
		name  string
		start board.Cell
		h, v  int
	}{
		{name: "start off grid with empty width", start: board.Cell{Row: 9, Col: 9}, h: 2, v: 0},
		{name: "walks above row zero", start: board.Cell{Row: 0, Col: 0}, h: -2, v: 0},
		{name: "start off grid with empty height", start: board.Cell{Row: 9, Col: 9}, h: 0, v: 2},
		{name: "walks left of column zero", start: board.Cell{Row: 0, Col: 0}, h: 0, v: -2},
		{name: "huge height", start: board.Cell{Row: 0, Col: 0}, h: 1 << 30, v: 0},
	}
	for _, tc := range offGrid {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = m.Subboard(v.Code, tc.start, tc.h, tc.v)
			})
			assert.ErrorIs(t, err, room.ErrOutOfBounds)
		})
	}
}

func TestFindReplaceDiff(t *testing.T) {
	t.Parallel()
	m, rec := newManager(t)
	v, _ := m.CreateRoom(4, 4)
	for _, c := range []board.Cell{{Row: 1, Col: 0}, {Row: 3, Col: 3}, {Row: 1, Col: 1}} {
		var err error
		v, err = m.Play(v.Code, c, board.Empty)
		require.NoError(t, err)
	}

	match, ok, err := m.Find(v.Code, board.MustParse("BB?"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"BB."}, match.Lines())

	before := v.Board
	replaced, after, err := m.Replace(v.Code, board.MustParse("BB"), board.MustParse("WW"))
	require.NoError(t, err)
	require.True(t, replaced)
	assert.Equal(t, "WW..", after.Board.Lines()[1])

	cells, err := m.Diff(v.Code, before)
	require.NoError(t, err)
	assert.Equal(t, []board.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, cells)

	assert.Contains(t, rec.events, event{v.Code, "replaced"})
}

func TestRotateAndDelete(t *testing.T) {
	t.Parallel()
	m, rec := newManager(t)
	v, _ := m.CreateRoom(2, 3)

	v, err := m.Rotate(v.Code)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Board.Rows())
	assert.Equal(t, 2, v.Board.Cols())

	require.NoError(t, m.Delete(v.Code))
	assert.ErrorIs(t, m.Delete(v.Code), room.ErrRoomNotFound)
	assert.Contains(t, rec.events, event{v.Code, "room-closed"})
}

func TestCodesSorted(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	assert.Empty(t, m.Codes())

	var want []string
	for i := 0; i < 5; i++ {
		v, err := m.CreateRoom(3, 3)
		require.NoError(t, err)
		want = append(want, v.Code)
	}
	sort.Strings(want)

	assert.Equal(t, want, m.Codes())

	require.NoError(t, m.Delete(want[0]))
	assert.Equal(t, want[1:], m.Codes())
}
