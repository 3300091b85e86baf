package patterns

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gomoku/internal/board"

	"github.com/google/uuid"
)

// SQLiteRepository is a Repository backed by the patterns table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, p Pattern) error {
	if r.db == nil {
		return errors.New("sqlite pattern repository: db is nil")
	}
	if err := p.validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	rowsText, err := json.Marshal(p.Board.Lines())
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	const query = `
INSERT INTO patterns (id, name, rows_text, cols, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET rows_text = excluded.rows_text, cols = excluded.cols
`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, string(rowsText), p.Board.Cols(), p.CreatedAt); err != nil {
		return fmt.Errorf("insert pattern: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindByName(ctx context.Context, name string) (Pattern, error) {
	const query = `
SELECT id, name, rows_text, cols, created_at
FROM patterns
WHERE name = ?
`
	return scanPattern(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Pattern, error) {
	const query = `
SELECT id, name, rows_text, cols, created_at
FROM patterns
ORDER BY name
`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}
	defer rows.Close()

	out := []Pattern{}
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patterns: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patterns WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPatternNotFound, name)
	}
	return nil
}

func scanPattern(scanner interface {
	Scan(dest ...any) error
}) (Pattern, error) {
	var (
		p        Pattern
		rowsText string
		cols     int
	)
	if err := scanner.Scan(&p.ID, &p.Name, &rowsText, &cols, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pattern{}, ErrPatternNotFound
		}
		return Pattern{}, fmt.Errorf("scan pattern: %w", err)
	}

	var lines []string
	if err := json.Unmarshal([]byte(rowsText), &lines); err != nil {
		return Pattern{}, fmt.Errorf("decode rows: %w", err)
	}
	b, err := board.Parse(lines...)
	if err != nil {
		return Pattern{}, fmt.Errorf("decode rows: %w", err)
	}
	if b.Cols() != cols {
		return Pattern{}, fmt.Errorf("decode rows: width %d, stored %d", b.Cols(), cols)
	}
	p.Board = b
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
