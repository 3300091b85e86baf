package http

import (
	"net/http"

	"gomoku/internal/config"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler exposes the defaults new rooms are created with.
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"boardRows":    cfg.BoardRows,
			"boardCols":    cfg.BoardCols,
			"maxBoardSize": cfg.MaxBoardSize,
		})
	}
}
