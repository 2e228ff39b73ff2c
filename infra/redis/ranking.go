package redis

import (
	"context"
	"fmt"
	"strconv"

	"riddle-service/domain"

	"go.uber.org/zap"
)

const rankingKey = "ranking:wins"

// RecordRound credits the winner of a round, if there was one.
func (rm *RedisManager) RecordRound(ctx context.Context, result domain.RoundResult) error {
	if result.WinnerID <= 0 {
		return nil
	}
	member := strconv.FormatInt(result.WinnerID, 10)
	if err := rm.client.ZIncrBy(ctx, rankingKey, 1, member).Err(); err != nil {
		return fmt.Errorf("failed to update ranking: %w", err)
	}
	return nil
}

func (rm *RedisManager) TopWinners(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	scores, err := rm.client.ZRevRangeWithScores(ctx, rankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read ranking: %v", domain.ErrInternal, err)
	}

	entries := make([]domain.RankingEntry, 0, len(scores))
	for _, z := range scores {
		member, _ := z.Member.(string)
		userID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			zap.L().Warn("Skipping malformed ranking member", zap.String("member", member))
			continue
		}
		entries = append(entries, domain.RankingEntry{UserID: userID, Wins: int64(z.Score)})
	}
	return entries, nil
}
