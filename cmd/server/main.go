package main

import (
	"context"

	_ "gomoku/docs"
	httpapi "gomoku/internal/api/http"
	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/database"
	"gomoku/internal/patterns"
	"gomoku/internal/room"
	"gomoku/internal/store"

	"github.com/sirupsen/logrus"
)

// @title Gomoku Board API
// @version 1.0
// @description Rooms, board geometry and pattern search for gomoku (Go + Gin)
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logrus.SetLevel(cfg.LogLevel)

	db, err := database.Open(context.Background(), cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("open pattern library")
	}
	defer db.Close()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)

	r := httpapi.NewRouter(rm, hub, patterns.NewSQLiteRepository(db), cfg)

	logrus.WithFields(logrus.Fields{
		"addr":     cfg.HTTPAddr,
		"board":    [2]int{cfg.BoardRows, cfg.BoardCols},
		"database": cfg.DatabasePath,
	}).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
