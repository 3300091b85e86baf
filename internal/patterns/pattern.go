package patterns

import (
	"context"
	"errors"
	"time"

	"gomoku/internal/board"
)

var (
	ErrPatternNotFound = errors.New("pattern not found")
	ErrEmptyName       = errors.New("pattern name must not be empty")
	ErrEmptyPattern    = errors.New("pattern must have at least one cell")
)

// Pattern is a named board template. Wildcard cells are "don't care".
type Pattern struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Board     *board.Board `json:"board"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (p Pattern) validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Board == nil || p.Board.Rows() == 0 || p.Board.Cols() == 0 {
		return ErrEmptyPattern
	}
	return nil
}

// Repository persists patterns by unique name.
type Repository interface {
	// Save inserts p, or overwrites the pattern that already has its name.
	Save(ctx context.Context, p Pattern) error
	FindByName(ctx context.Context, name string) (Pattern, error)
	// List returns all patterns ordered by name.
	List(ctx context.Context) ([]Pattern, error)
	Delete(ctx context.Context, name string) error
}
