// Package board implements a dense gomoku grid with wildcard pattern matching.
//
// A Board is not safe for concurrent use. Indexing outside the grid panics;
// callers validate coordinates with InBounds first.
package board

const DefaultSize = 15

// Board is a rows x cols grid of sides plus the last move played on it.
type Board struct {
	rows, cols int
	cells      [][]Side
	last       Cell
	moved      bool
}

// New allocates an all-Empty board.
func New(rows, cols int) *Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	c := make([][]Side, rows)
	for i := range c {
		c[i] = make([]Side, cols)
	}
	return &Board{rows: rows, cols: cols, cells: c}
}

// NewDefault returns an empty 15x15 board.
func NewDefault() *Board {
	return New(DefaultSize, DefaultSize)
}

// FromRows copies rows into a new board. Short rows are padded with Empty
// up to the longest row, so ragged input always yields a rectangle.
func FromRows(rows [][]Side) *Board {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	b := New(len(rows), width)
	for i, r := range rows {
		copy(b.cells[i], r)
	}
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// IsEmpty reports whether the board has no rows.
func (b *Board) IsEmpty() bool {
	return b.rows == 0
}

// LastCell returns the bottom-right coordinate. ok is false for a board
// without any cells.
func (b *Board) LastCell() (c Cell, ok bool) {
	if b.rows == 0 || b.cols == 0 {
		return Cell{}, false
	}
	return Cell{b.rows - 1, b.cols - 1}, true
}

func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Row returns row r itself, not a copy. Writes through it change the board.
func (b *Board) Row(r int) []Side {
	return b.cells[r]
}

func (b *Board) At(r, c int) Side {
	return b.cells[r][c]
}

func (b *Board) Set(r, c int, s Side) {
	b.cells[r][c] = s
}

// Clear empties every cell. Size and last move are kept.
func (b *Board) Clear() {
	for i := range b.cells {
		for j := range b.cells[i] {
			b.cells[i][j] = Empty
		}
	}
}

// Move writes side at c and records it as the last move.
// No legality check is done here.
func (b *Board) Move(c Cell, side Side) {
	b.cells[c.Row][c.Col] = side
	b.last = c
	b.moved = true
}

// LastMove returns the most recent move. ok is false until Move is called.
func (b *Board) LastMove() (c Cell, ok bool) {
	return b.last, b.moved
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	p := New(b.rows, b.cols)
	for i := range b.cells {
		copy(p.cells[i], b.cells[i])
	}
	p.last, p.moved = b.last, b.moved
	return p
}

// Count returns how many cells hold s.
func (b *Board) Count(s Side) int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v == s {
				n++
			}
		}
	}
	return n
}
