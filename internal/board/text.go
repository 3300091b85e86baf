package board

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse builds a board from glyph rows such as "B.W?". Ragged rows are
// padded with Empty like FromRows.
func Parse(lines ...string) (*Board, error) {
	rows := make([][]Side, len(lines))
	for i, line := range lines {
		row := make([]Side, 0, len(line))
		for j, r := range []rune(line) {
			s, err := ParseSide(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			row = append(row, s)
		}
		rows[i] = row
	}
	return FromRows(rows), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(lines ...string) *Board {
	b, err := Parse(lines...)
	if err != nil {
		panic(err)
	}
	return b
}

// Lines returns one glyph string per row.
func (b *Board) Lines() []string {
	out := make([]string, b.rows)
	var sb strings.Builder
	for i, row := range b.cells {
		sb.Reset()
		for _, s := range row {
			sb.WriteString(s.String())
		}
		out[i] = sb.String()
	}
	return out
}

func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}

type boardJSON struct {
	Rows     []string `json:"rows"`
	Cols     int      `json:"cols"`
	LastMove *Cell    `json:"lastMove"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{Rows: b.Lines(), Cols: b.cols}
	if c, ok := b.LastMove(); ok {
		out.LastMove = &c
	}
	return json.Marshal(out)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p, err := Parse(in.Rows...)
	if err != nil {
		return err
	}
	// keep the width of boards whose rows carry no cells
	if in.Cols > p.cols {
		q := New(p.rows, in.Cols)
		for i := range p.cells {
			copy(q.cells[i], p.cells[i])
		}
		p = q
	}
	*b = *p
	if in.LastMove != nil {
		b.last, b.moved = *in.LastMove, true
	}
	return nil
}
