package board

// Subboard copies an |h| x |v| region starting at start. Local cell (u, w)
// is the source cell u steps from start along rows and w steps along
// columns. A negative length walks towards decreasing indices, so the sign
// pair picks which corner of start the region extends to.
//
// Walking off the grid panics.
func (b *Board) Subboard(start Cell, h, v int) *Board {
	dr, hn := direction(h)
	dc, vn := direction(v)
	p := New(hn, vn)
	if hn == 0 || vn == 0 {
		return p
	}
	for u := 0; u < hn; u++ {
		src := b.cells[start.Row+u*dr]
		for w := 0; w < vn; w++ {
			p.cells[u][w] = src[start.Col+w*dc]
		}
	}
	return p
}

func direction(n int) (step, length int) {
	if n < 0 {
		return -1, -n
	}
	return 1, n
}

// Rotate turns the board 90 degrees clockwise in place. The last move
// record is rotated with the grid.
func (b *Board) Rotate() {
	m, n := b.rows, b.cols
	p := New(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			p.cells[j][m-i-1] = b.cells[i][j]
		}
	}
	b.rows, b.cols, b.cells = p.rows, p.cols, p.cells
	if b.moved {
		b.last = Cell{b.last.Col, m - b.last.Row - 1}
	}
}

// rotations returns p turned by 0, 90, 180 and 270 degrees.
func rotations(p *Board) [4]*Board {
	var out [4]*Board
	cur := p.Clone()
	for k := range out {
		out[k] = cur.Clone()
		cur.Rotate()
	}
	return out
}
