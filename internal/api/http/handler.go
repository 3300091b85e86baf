package http

import (
	"errors"
	"io"
	"net/http"

	"gomoku/internal/board"
	"gomoku/internal/patterns"
	"gomoku/internal/room"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return false
	}
	return true
}

func parseBoard(c *gin.Context, rows []string) (*board.Board, bool) {
	b, err := board.Parse(rows...)
	if err != nil {
		handleError(c, err)
		return nil, false
	}
	return b, true
}

// CreateRoomHandler serves POST /rooms.
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(c, http.StatusBadRequest, err)
			return
		}
		v, err := rm.CreateRoom(req.Rows, req.Cols)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"room": v})
	}
}

// ListRoomsHandler serves GET /rooms.
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": rm.Codes()})
	}
}

// GetRoomHandler serves GET /rooms/:code.
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := rm.Get(c.Param("code"))
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

// DeleteRoomHandler serves DELETE /rooms/:code.
func DeleteRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rm.Delete(c.Param("code")); err != nil {
			handleError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// MoveHandler serves POST /rooms/:code/move.
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if !bindJSON(c, &req) {
			return
		}
		v, err := rm.Play(c.Param("code"), board.Cell{Row: *req.Row, Col: *req.Col}, req.Side)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

// ClearHandler serves POST /rooms/:code/clear.
func ClearHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := rm.Clear(c.Param("code"))
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

// RotateHandler serves POST /rooms/:code/rotate.
func RotateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := rm.Rotate(c.Param("code"))
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": v})
	}
}

// SubboardHandler serves POST /rooms/:code/subboard.
func SubboardHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubboardRequest
		if !bindJSON(c, &req) {
			return
		}
		sub, err := rm.Subboard(c.Param("code"), board.Cell{Row: req.Row, Col: req.Col}, req.H, req.V)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"board": sub})
	}
}

// ExistHandler serves POST /rooms/:code/exist. A miss is a normal 200
// response with found=false.
func ExistHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PatternRequest
		if !bindJSON(c, &req) {
			return
		}
		pattern, ok := parseBoard(c, req.Pattern)
		if !ok {
			return
		}
		match, found, err := rm.Find(c.Param("code"), pattern)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"found": found, "match": match})
	}
}

// ReplaceHandler serves POST /rooms/:code/replace.
func ReplaceHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplaceRequest
		if !bindJSON(c, &req) {
			return
		}
		from, ok := parseBoard(c, req.From)
		if !ok {
			return
		}
		to, ok := parseBoard(c, req.To)
		if !ok {
			return
		}
		replaced, v, err := rm.Replace(c.Param("code"), from, to)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"replaced": replaced, "room": v})
	}
}

// DiffHandler serves POST /rooms/:code/diff.
func DiffHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DiffRequest
		if !bindJSON(c, &req) {
			return
		}
		other, ok := parseBoard(c, req.Board)
		if !ok {
			return
		}
		cells, err := rm.Diff(c.Param("code"), other)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cells": cells})
	}
}

// ScanHandler serves GET /rooms/:code/scan against the pattern library.
func ScanHandler(rm *room.Manager, scanner *patterns.Scanner) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := rm.Get(c.Param("code"))
		if err != nil {
			handleError(c, err)
			return
		}
		matches, err := scanner.Scan(c.Request.Context(), v.Board)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"matches": matches})
	}
}
