package board

import "fmt"

// Cell is a zero-indexed (row, column) coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Translate returns the cell dr rows and dc columns away.
func (c Cell) Translate(dr, dc int) Cell {
	return Cell{c.Row + dr, c.Col + dc}
}
