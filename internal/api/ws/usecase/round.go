package wsUsecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/game"

	"go.uber.org/zap"
)

const recordTimeout = 5 * time.Second

// Recorders fans a finished round out to every sink. One failing sink does
// not stop the others.
type Recorders []ResultRecorder

func (rs Recorders) RecordRound(ctx context.Context, result domain.RoundResult) error {
	var errs []error
	for _, r := range rs {
		if err := r.RecordRound(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// lockRound locks the room and returns its active game. On success the
// caller owns the room lock and must release it.
func lockRound(registry *game.Registry, roomID int64) (*game.Room, *game.Game, error) {
	room, err := registry.Get(roomID)
	if err != nil {
		return nil, nil, err
	}
	room.Lock()
	if room.Game == nil {
		room.Unlock()
		return nil, nil, fmt.Errorf("%w: no game in progress in room %d", domain.ErrNotFound, roomID)
	}
	return room, room.Game, nil
}

func requireMember(room *game.Room, userID int64) (*game.Player, error) {
	p, ok := room.Player(userID)
	if !ok {
		return nil, fmt.Errorf("%w: user %d is not in room %d", domain.ErrInvalidInput, userID, room.ID)
	}
	return p, nil
}

func requireHost(room *game.Room, userID int64, action string) error {
	if room.HostID != userID {
		return fmt.Errorf("%w: only the host can %s", domain.ErrInvalidInput, action)
	}
	return nil
}

// nextTurn describes the current questioner. Must be called with the room
// lock held.
func nextTurn(room *game.Room, round *game.Game) *domain.NextTurn {
	id, ok := round.CurrentQuestioner()
	if !ok {
		return nil
	}
	nt := &domain.NextTurn{NextPlayerID: id, RemainingQuestions: round.RemainingQuestions()}
	if p, ok := room.Player(id); ok {
		nt.NextPlayerNickname = p.Nickname
	}
	return nt
}

// refreshNickname replaces the in-room nickname with the user store's, if
// the store knows the user. Never called under a room lock.
func refreshNickname(ctx context.Context, users UserRepository, nt *domain.NextTurn) {
	if nt == nil || users == nil {
		return
	}
	user, err := users.GetUser(ctx, nt.NextPlayerID)
	if err != nil {
		zap.L().Debug("Falling back to room nickname", zap.Int64("user_id", nt.NextPlayerID), zap.Error(err))
		return
	}
	if user.Nickname != "" {
		nt.NextPlayerNickname = user.Nickname
	}
}

// closeRound ends the round in place and returns its summary. Must be
// called with the room lock held.
func closeRound(room *game.Room, round *game.Game, deadlines DeadlineScheduler, reason domain.EndReason, winner *domain.WinnerInfo, guess string) (domain.EndSummary, domain.RoundResult) {
	playTime := deadlines.Elapsed(room.ID)
	deadlines.Cancel(room.ID)

	summary := domain.EndSummary{
		Reason:             reason,
		Winner:             winner,
		TotalQuestionCount: round.QuestionsUsed(),
		PlayTime:           playTime,
		History:            round.History(),
	}
	result := domain.RoundResult{
		RoomID:        room.ID,
		Reason:        reason,
		QuestionCount: round.QuestionsUsed(),
		PlayTime:      playTime,
		PlayerIDs:     round.TurnOrder(),
		EndedAt:       time.Now().UTC(),
	}
	if winner != nil {
		result.WinnerID = winner.WinnerID
	}
	if room.Puzzle != nil {
		summary.Puzzle = domain.EndPuzzle{
			Title:   room.Puzzle.Title,
			Content: room.Puzzle.Content,
			Guess:   guess,
			Answer:  room.Puzzle.Answer,
		}
		result.PuzzleID = room.Puzzle.ID
		result.PuzzleSource = room.Puzzle.Source
	}

	room.EndRound()
	zap.L().Info("round ended",
		zap.Int64("room_id", room.ID),
		zap.String("reason", string(reason)),
		zap.Int("questions", summary.TotalQuestionCount),
		zap.String("play_time", playTime))
	return summary, result
}

// record stores a finished round on its own goroutine, bounded by
// recordTimeout. Failures are logged only.
func record(ctx context.Context, recorder ResultRecorder, result domain.RoundResult) {
	if recorder == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()
		if err := recorder.RecordRound(ctx, result); err != nil {
			zap.L().Warn("Failed to record round", zap.Int64("room_id", result.RoomID), zap.Error(err))
		}
	}()
}
