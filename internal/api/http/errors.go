package http

import (
	"errors"
	"net/http"

	"gomoku/internal/board"
	"gomoku/internal/patterns"
	"gomoku/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "http")

// handleError maps service errors onto HTTP status codes.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, patterns.ErrPatternNotFound):
		writeError(c, http.StatusNotFound, err)
	case errors.Is(err, room.ErrCellOccupied), errors.Is(err, room.ErrNotYourTurn):
		writeError(c, http.StatusConflict, err)
	case errors.Is(err, room.ErrInvalidSize),
		errors.Is(err, room.ErrOutOfBounds),
		errors.Is(err, room.ErrInvalidSide),
		errors.Is(err, board.ErrInvalidGlyph),
		errors.Is(err, patterns.ErrEmptyName),
		errors.Is(err, patterns.ErrEmptyPattern):
		writeError(c, http.StatusBadRequest, err)
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		writeError(c, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func writeError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
