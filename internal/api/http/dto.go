package http

import "gomoku/internal/board"

// CreateRoomRequest is the payload for POST /rooms. Zero sizes use the
// configured default.
type CreateRoomRequest struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// MoveRequest places a stone. An omitted side plays for whoever is on turn.
type MoveRequest struct {
	Row  *int       `json:"row" binding:"required"`
	Col  *int       `json:"col" binding:"required"`
	Side board.Side `json:"side"`
}

// SubboardRequest selects an |h| x |v| region from (row, col). Negative
// lengths walk up or left.
type SubboardRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
	H   int `json:"h"`
	V   int `json:"v"`
}

// PatternRequest carries a pattern as glyph rows, e.g. ["B?B"].
type PatternRequest struct {
	Pattern []string `json:"pattern" binding:"required"`
}

type ReplaceRequest struct {
	From []string `json:"from" binding:"required"`
	To   []string `json:"to" binding:"required"`
}

type DiffRequest struct {
	Board []string `json:"board" binding:"required"`
}

type SavePatternRequest struct {
	Name string   `json:"name" binding:"required"`
	Rows []string `json:"rows" binding:"required"`
}
