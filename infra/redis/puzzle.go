package redis

import (
	"context"
	"fmt"

	"riddle-service/domain"

	"github.com/google/uuid"
)

const customPuzzlePrefix = "puzzle:custom:"

func customPuzzleKey(id string) string { return customPuzzlePrefix + id }

// SaveCustomPuzzle stores a user-written puzzle and returns its new id.
func (rm *RedisManager) SaveCustomPuzzle(ctx context.Context, puzzle domain.Puzzle) (string, error) {
	id := uuid.NewString()
	err := rm.client.HSet(ctx, customPuzzleKey(id),
		"title", puzzle.Title,
		"content", puzzle.Content,
		"answer", puzzle.Answer,
	).Err()
	if err != nil {
		return "", fmt.Errorf("%w: failed to save custom puzzle: %v", domain.ErrInternal, err)
	}
	return id, nil
}

func (rm *RedisManager) GetCustomPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	fields, err := rm.client.HGetAll(ctx, customPuzzleKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load custom puzzle: %v", domain.ErrInternal, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: custom puzzle %s", domain.ErrNotFound, id)
	}
	return &domain.Puzzle{
		ID:      id,
		Source:  domain.SourceCustom,
		Title:   fields["title"],
		Content: fields["content"],
		Answer:  fields["answer"],
	}, nil
}
