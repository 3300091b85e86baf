package board

// Equals compares two boards of the same size cell by cell. A Wildcard on
// either side matches anything.
func (b *Board) Equals(p *Board) bool {
	if b.rows != p.rows || b.cols != p.cols {
		return false
	}
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			if !sideMatch(b.cells[i][j], p.cells[i][j]) {
				return false
			}
		}
	}
	return true
}

func sideMatch(a, c Side) bool {
	return a == Wildcard || c == Wildcard || a == c
}

// Exist searches for p anywhere on the board in any of its four rotations.
// Anchors are scanned row-major and rotations tried 0, 90, 180, 270 degrees
// at each anchor; the first hit wins. The match is returned in the matched
// orientation with every Wildcard of the pattern replaced by the value on
// the board.
//
// If nothing matches, an empty 0x0 board and false are returned.
func (b *Board) Exist(p *Board) (*Board, bool) {
	if p.rows == 0 || p.cols == 0 {
		return New(0, 0), false
	}
	rots := rotations(p)
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			for _, r := range rots {
				if i+r.rows > b.rows || j+r.cols > b.cols {
					continue
				}
				sub := b.Subboard(Cell{i, j}, r.rows, r.cols)
				if !sub.Equals(r) {
					continue
				}
				return concretize(r, sub), true
			}
		}
	}
	return New(0, 0), false
}

// concretize fills the wildcards of pattern with the matching cells of found.
func concretize(pattern, found *Board) *Board {
	out := New(pattern.rows, pattern.cols)
	for u := range out.cells {
		for w := range out.cells[u] {
			s := pattern.cells[u][w]
			if s == Wildcard {
				s = found.cells[u][w]
			}
			out.cells[u][w] = s
		}
	}
	return out
}

// find returns the first row-major anchor whose region equals p, without
// rotating it.
func (b *Board) find(p *Board) (Cell, bool) {
	if p.rows == 0 || p.cols == 0 {
		return Cell{}, false
	}
	for i := 0; i+p.rows <= b.rows; i++ {
		for j := 0; j+p.cols <= b.cols; j++ {
			if b.Subboard(Cell{i, j}, p.rows, p.cols).Equals(p) {
				return Cell{i, j}, true
			}
		}
	}
	return Cell{}, false
}

// Replace overwrites the first region matching from with the contents of
// to. Only concrete cells of to are written: a Wildcard in to leaves the
// board cell as it was, so Wildcard never lands on the board. Nothing
// happens when from and to differ in size or from is not on the board; the
// result reports whether a region was written.
func (b *Board) Replace(from, to *Board) bool {
	if from.rows != to.rows || from.cols != to.cols {
		return false
	}
	pos, ok := b.find(from)
	if !ok {
		return false
	}
	for u := 0; u < to.rows; u++ {
		for w := 0; w < to.cols; w++ {
			if s := to.cells[u][w]; s != Wildcard {
				b.cells[pos.Row+u][pos.Col+w] = s
			}
		}
	}
	return true
}

// Diff lists, in row-major order, the cells whose values differ between the
// two boards. Wildcards never count as a difference. Boards of different
// sizes give an empty result.
func (b *Board) Diff(p *Board) []Cell {
	out := []Cell{}
	if b.rows != p.rows || b.cols != p.cols {
		return out
	}
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			if !sideMatch(b.cells[i][j], p.cells[i][j]) {
				out = append(out, Cell{i, j})
			}
		}
	}
	return out
}
