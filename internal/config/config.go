package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

var ErrInvalidBoardSize = errors.New("config: board size must be positive and within the maximum")

// DefaultMaxBoardSize caps either side of a room board when BOARD_MAX_SIZE
// is unset.
const DefaultMaxBoardSize = 100

type Config struct {
	HTTPAddr     string
	BoardRows    int
	BoardCols    int
	MaxBoardSize int
	DatabasePath string
	LogLevel     logrus.Level
}

const (
	envHTTPAddr    = "HTTP_ADDR"
	envBoardRows   = "BOARD_ROWS"
	envBoardCols   = "BOARD_COLS"
	envBoardMax    = "BOARD_MAX_SIZE"
	envDatabaseDir = "DATABASE_DIR"
	envDatabaseURI = "DATABASE_PATH"
	envLogLevel    = "LOG_LEVEL"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads the configuration from the environment, falling back to
// defaults for anything unset.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:     getenv(envHTTPAddr, ":8080"),
		BoardRows:    getenvInt(envBoardRows, 15),
		BoardCols:    getenvInt(envBoardCols, 15),
		MaxBoardSize: getenvInt(envBoardMax, DefaultMaxBoardSize),
		LogLevel:     logrus.InfoLevel,
	}
	if cfg.MaxBoardSize <= 0 {
		return Config{}, fmt.Errorf("%w: max %d", ErrInvalidBoardSize, cfg.MaxBoardSize)
	}
	if cfg.BoardRows <= 0 || cfg.BoardCols <= 0 ||
		cfg.BoardRows > cfg.MaxBoardSize || cfg.BoardCols > cfg.MaxBoardSize {
		return Config{}, fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidBoardSize, cfg.BoardRows, cfg.BoardCols, cfg.MaxBoardSize)
	}

	if lvl := os.Getenv(envLogLevel); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", envLogLevel, err)
		}
		cfg.LogLevel = parsed
	}

	cfg.DatabasePath = os.Getenv(envDatabaseURI)
	if cfg.DatabasePath == "" {
		dir := getenv(envDatabaseDir, "./data")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Config{}, fmt.Errorf("create database dir: %w", err)
		}
		cfg.DatabasePath = filepath.Join(dir, "patterns.sqlite3")
	}

	return cfg, nil
}
