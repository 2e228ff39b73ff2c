package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"riddle-service/domain"
)

const (
	getUserQuery = `SELECT id, nickname FROM users WHERE id = $1`

	upsertUserQuery = `
		INSERT INTO users (id, nickname)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET nickname = EXCLUDED.nickname, updated_at = CURRENT_TIMESTAMP`
)

func (r *Repository) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, getUserQuery, id).Scan(&user.ID, &user.Nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
		}
		return domain.User{}, fmt.Errorf("%w: failed to load user: %v", domain.ErrInternal, err)
	}
	return user, nil
}

func (r *Repository) UpsertUser(ctx context.Context, id int64, nickname string) error {
	if id <= 0 || nickname == "" {
		return fmt.Errorf("%w: user id and nickname are required", domain.ErrInvalidInput)
	}
	if _, err := r.db.ExecContext(ctx, upsertUserQuery, id, nickname); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}
