package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"riddle-service/domain"

	"github.com/lib/pq"
)

const insertGameResultQuery = `
	INSERT INTO game_results
		(room_id, puzzle_id, puzzle_source, end_reason, winner_id, question_count, play_time, player_ids, ended_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// RecordRound stores one finished round.
func (r *Repository) RecordRound(ctx context.Context, result domain.RoundResult) error {
	winner := sql.NullInt64{Int64: result.WinnerID, Valid: result.WinnerID > 0}
	players := result.PlayerIDs
	if players == nil {
		players = []int64{}
	}

	_, err := r.db.ExecContext(ctx, insertGameResultQuery,
		result.RoomID,
		result.PuzzleID,
		string(result.PuzzleSource),
		string(result.Reason),
		winner,
		result.QuestionCount,
		result.PlayTime,
		pq.Array(players),
		result.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}
	return nil
}
