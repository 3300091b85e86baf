package patterns

import (
	"context"
	"fmt"

	"gomoku/internal/board"
)

// Match is one library pattern found on a board.
type Match struct {
	Name  string       `json:"name"`
	Board *board.Board `json:"match"`
}

// Scanner checks a board against every pattern in a Repository.
type Scanner struct {
	repo Repository
}

func NewScanner(repo Repository) *Scanner {
	return &Scanner{repo: repo}
}

// Scan returns the concretized match of each stored pattern that occurs on
// b, in pattern name order. b is only read.
func (s *Scanner) Scan(ctx context.Context, b *board.Board) ([]Match, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	out := []Match{}
	for _, p := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m, ok := b.Exist(p.Board); ok {
			out = append(out, Match{Name: p.Name, Board: m})
		}
	}
	return out, nil
}
