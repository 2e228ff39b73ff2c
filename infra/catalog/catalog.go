// Package catalog resolves a puzzle reference to the store that owns it.
package catalog

import (
	"context"
	"fmt"

	"riddle-service/domain"
)

type OriginalStore interface {
	GetPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
}

type CustomStore interface {
	GetCustomPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
}

type Catalog struct {
	original OriginalStore
	custom   CustomStore
}

func New(original OriginalStore, custom CustomStore) *Catalog {
	return &Catalog{original: original, custom: custom}
}

func (c *Catalog) GetPuzzle(ctx context.Context, id string, source domain.PuzzleSource) (*domain.Puzzle, error) {
	switch source {
	case domain.SourceOriginal:
		return c.original.GetPuzzle(ctx, id)
	case domain.SourceCustom:
		return c.custom.GetCustomPuzzle(ctx, id)
	default:
		return nil, fmt.Errorf("%w: unknown puzzle source %q", domain.ErrInvalidInput, source)
	}
}
