package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type RespondGuessParams struct {
	SenderID int64
	Guess    string
	Verdict  domain.AnswerStatus
}

type RespondGuessResult struct {
	HostID int64
	Record domain.QnA
	// Summary is set when the verdict ended the round. Otherwise exactly
	// one of NextGuess and NextTurn is set.
	Summary   *domain.EndSummary
	NextGuess *domain.GuessPayload
	NextTurn  *domain.NextTurn
}

type RespondGuessUseCase interface {
	Execute(ctx context.Context, roomID, userID int64, params RespondGuessParams) (*RespondGuessResult, error)
}

type respondGuessUseCase struct {
	registry  *game.Registry
	deadlines DeadlineScheduler
	users     UserRepository
	recorder  ResultRecorder
}

func NewRespondGuessUseCase(registry *game.Registry, deadlines DeadlineScheduler, users UserRepository, recorder ResultRecorder) RespondGuessUseCase {
	return &respondGuessUseCase{
		registry:  registry,
		deadlines: deadlines,
		users:     users,
		recorder:  recorder,
	}
}

func (u *respondGuessUseCase) Execute(ctx context.Context, roomID, userID int64, params RespondGuessParams) (*RespondGuessResult, error) {
	if params.Verdict != domain.AnswerCorrect && params.Verdict != domain.AnswerIncorrect {
		return nil, fmt.Errorf("%w: %q is not a valid verdict", domain.ErrInvalidInput, params.Verdict)
	}

	room, round, err := lockRound(u.registry, roomID)
	if err != nil {
		return nil, err
	}
	res, result, err := u.judge(room, round, userID, params)
	room.Unlock()
	if err != nil {
		return nil, err
	}

	if res.Summary != nil {
		record(ctx, u.recorder, *result)
	}
	refreshNickname(ctx, u.users, res.NextTurn)
	return res, nil
}

func (u *respondGuessUseCase) judge(room *game.Room, round *game.Game, userID int64, params RespondGuessParams) (*RespondGuessResult, *domain.RoundResult, error) {
	if err := requireHost(room, userID, "judge guesses"); err != nil {
		return nil, nil, err
	}
	head, ok := round.PeekGuess()
	if !ok {
		return nil, nil, fmt.Errorf("%w: no guess is waiting to be judged", domain.ErrInvalidInput)
	}
	if head.SenderID != params.SenderID || head.Guess != params.Guess {
		return nil, nil, fmt.Errorf("%w: that guess is not the next one to judge", domain.ErrInvalidInput)
	}
	round.PopGuess()

	record := domain.QnA{
		Type:    domain.HistoryGuess,
		ActorID: head.SenderID,
		Text:    head.Guess,
		Status:  params.Verdict,
	}
	round.AddQnA(record)
	res := &RespondGuessResult{HostID: room.HostID, Record: record}

	var (
		reason domain.EndReason
		winner *domain.WinnerInfo
	)
	switch {
	case params.Verdict == domain.AnswerCorrect:
		reason = domain.EndCorrectAnswer
		winner = &domain.WinnerInfo{WinnerID: head.SenderID}
		if p, ok := room.Player(head.SenderID); ok {
			winner.Nickname = p.Nickname
		}
	case round.GuessesExhausted(room.HostID):
		reason = domain.EndExhaustedAttempts
	}
	if reason != "" {
		summary, result := closeRound(room, round, u.deadlines, reason, winner, head.Guess)
		res.Summary = &summary
		return res, &result, nil
	}

	if next, ok := round.PeekGuess(); ok {
		res.NextGuess = &domain.GuessPayload{SenderID: next.SenderID, Guess: next.Guess}
		return res, nil, nil
	}
	round.AdvanceTurn()
	res.NextTurn = nextTurn(room, round)
	return res, nil, nil
}
