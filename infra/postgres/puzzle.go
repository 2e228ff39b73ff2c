package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"riddle-service/domain"
)

const getProblemQuery = `
	SELECT id, title, content, answer
	FROM problems
	WHERE id = $1`

// GetPuzzle loads an ORIGINAL puzzle from the catalog.
func (r *Repository) GetPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	puzzle := &domain.Puzzle{Source: domain.SourceOriginal}
	err := r.db.QueryRowContext(ctx, getProblemQuery, id).Scan(&puzzle.ID, &puzzle.Title, &puzzle.Content, &puzzle.Answer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: puzzle %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to load puzzle: %v", domain.ErrInternal, err)
	}
	return puzzle, nil
}
