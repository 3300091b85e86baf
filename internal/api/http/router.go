package http

import (
	"net/http"
	"time"

	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/patterns"
	"gomoku/internal/room"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, lib patterns.Repository, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
	r.GET("/config", GetConfigHandler(cfg))

	// API docs, registered by the docs package
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// WebSocket for live board updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.GET("/rooms", ListRoomsHandler(rm))
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.DELETE("/rooms/:code", DeleteRoomHandler(rm))

	// --- BOARD ENDPOINTS ---
	r.POST("/rooms/:code/move", MoveHandler(rm))
	r.POST("/rooms/:code/clear", ClearHandler(rm))
	r.POST("/rooms/:code/rotate", RotateHandler(rm))
	r.POST("/rooms/:code/subboard", SubboardHandler(rm))
	r.POST("/rooms/:code/exist", ExistHandler(rm))
	r.POST("/rooms/:code/replace", ReplaceHandler(rm))
	r.POST("/rooms/:code/diff", DiffHandler(rm))
	r.GET("/rooms/:code/scan", ScanHandler(rm, patterns.NewScanner(lib)))

	// --- PATTERN LIBRARY ---
	ph := NewPatternHandler(lib)
	r.GET("/patterns", ph.List)
	r.GET("/patterns/:name", ph.Get)
	r.POST("/patterns", ph.Save)
	r.DELETE("/patterns/:name", ph.Delete)

	return r
}
