package board

import "errors"

var (
	ErrInvalidGlyph = errors.New("board: invalid glyph")
	ErrInvalidSide  = errors.New("board: invalid side")
)
