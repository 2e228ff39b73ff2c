package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"riddle-service/domain"
)

// QuestionBudget is the number of questions a round starts with.
const QuestionBudget = 30

// PendingQuestion is a question asked by the current questioner that the
// host has not answered yet.
type PendingQuestion struct {
	QuestionerID int64
	Question     string
}

// Game holds the turn state of a single round. Turn fields are guarded by
// the owning room's lock; the guess queue and the history synchronize
// themselves.
type Game struct {
	turnOrder    []int64
	turnIndex    int
	questionerID int64
	remaining    int
	startedAt    time.Time
	roster       map[int64]*Player
	pending      *PendingQuestion

	guesses GuessQueue
	history History
}

// NewGame builds a round from the room's join order. The order is shuffled;
// the first player in the shuffled order asks first.
func NewGame(order []int64, players map[int64]*Player) (*Game, error) {
	return newGame(order, players, rand.Shuffle)
}

func newGame(order []int64, players map[int64]*Player, shuffle func(n int, swap func(i, j int))) (*Game, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no players to start a game with", domain.ErrInternal)
	}

	turnOrder := slices.Clone(order)
	roster := make(map[int64]*Player, len(turnOrder))
	for _, id := range turnOrder {
		p, ok := players[id]
		if !ok {
			return nil, fmt.Errorf("%w: player %d is missing from the room", domain.ErrInternal, id)
		}
		roster[id] = p
	}
	shuffle(len(turnOrder), func(i, j int) {
		turnOrder[i], turnOrder[j] = turnOrder[j], turnOrder[i]
	})

	for i, id := range turnOrder {
		p := roster[id]
		if i == 0 {
			p.SetRole(domain.RoleQuestioner)
		} else {
			p.SetRole(domain.RoleParticipant)
		}
		p.SetState(domain.PlayerPlaying)
		p.ResetAttempts()
	}

	return &Game{
		turnOrder:    turnOrder,
		questionerID: turnOrder[0],
		remaining:    QuestionBudget,
		startedAt:    time.Now(),
		roster:       roster,
	}, nil
}

func (g *Game) TurnOrder() []int64 { return slices.Clone(g.turnOrder) }

func (g *Game) TurnIndex() int { return g.turnIndex }

func (g *Game) StartedAt() time.Time { return g.startedAt }

// CurrentQuestioner reports false once nobody is left in the turn order.
func (g *Game) CurrentQuestioner() (int64, bool) {
	return g.questionerID, len(g.turnOrder) > 0
}

func (g *Game) IsCurrentQuestioner(userID int64) bool {
	return len(g.turnOrder) > 0 && g.questionerID == userID
}

// ValidateTurn is true while a questioner is assigned and questions remain.
func (g *Game) ValidateTurn() bool {
	return len(g.turnOrder) > 0 && !g.IsFinished()
}

// AdvanceTurn hands the turn to the next player and spends one question.
func (g *Game) AdvanceTurn() {
	if len(g.turnOrder) == 0 {
		return
	}
	if prev, ok := g.roster[g.questionerID]; ok {
		prev.SetRole(domain.RoleParticipant)
	}
	g.turnIndex = (g.turnIndex + 1) % len(g.turnOrder)
	g.questionerID = g.turnOrder[g.turnIndex]
	if next, ok := g.roster[g.questionerID]; ok {
		next.SetRole(domain.RoleQuestioner)
	}
	g.pending = nil
	g.spendQuestion()
}

// ConsumeQuestion charges an answered question against the budget.
func (g *Game) ConsumeQuestion() { g.spendQuestion() }

func (g *Game) spendQuestion() {
	if g.remaining > 0 {
		g.remaining--
	}
}

func (g *Game) RemainingQuestions() int { return g.remaining }

func (g *Game) QuestionsUsed() int { return QuestionBudget - g.remaining }

func (g *Game) IsFinished() bool {
	return g.remaining <= 0 || len(g.turnOrder) == 0
}

// RemovePlayerFromTurn drops a departing player from the rotation. It
// reports whether the current questioner changed as a result.
func (g *Game) RemovePlayerFromTurn(userID int64) bool {
	idx := slices.Index(g.turnOrder, userID)
	if idx == -1 {
		return false
	}
	delete(g.roster, userID)
	g.guesses.RemoveSender(userID)
	g.turnOrder = slices.Delete(g.turnOrder, idx, idx+1)
	if g.pending != nil && g.pending.QuestionerID == userID {
		g.pending = nil
	}

	if len(g.turnOrder) == 0 {
		g.turnIndex = 0
		g.questionerID = 0
		return true
	}

	if idx < g.turnIndex {
		g.turnIndex--
	}
	g.turnIndex %= len(g.turnOrder)

	prev := g.questionerID
	g.questionerID = g.turnOrder[g.turnIndex]
	if p, ok := g.roster[g.questionerID]; ok {
		p.SetRole(domain.RoleQuestioner)
	}
	return prev != g.questionerID
}

func (g *Game) SetPendingQuestion(q PendingQuestion) { g.pending = &q }

func (g *Game) PendingQuestion() (PendingQuestion, bool) {
	if g.pending == nil {
		return PendingQuestion{}, false
	}
	return *g.pending, true
}

func (g *Game) ClearPendingQuestion() { g.pending = nil }

func (g *Game) EnqueueGuess(a GuessAttempt) {
	a.Status = domain.AnswerPending
	g.guesses.Push(a)
}

func (g *Game) PeekGuess() (GuessAttempt, bool) { return g.guesses.Peek() }

func (g *Game) PopGuess() (GuessAttempt, bool) { return g.guesses.Pop() }

func (g *Game) PendingGuesses() int { return g.guesses.Len() }

// DropGuesses discards queued guesses from userID, e.g. when they become host.
func (g *Game) DropGuesses(userID int64) int { return g.guesses.RemoveSender(userID) }

func (g *Game) AddQnA(r domain.QnA) { g.history.Append(r) }

func (g *Game) History() []domain.QnA { return g.history.Snapshot() }

// Player looks up a player still taking part in the round.
func (g *Game) Player(userID int64) (*Player, bool) {
	p, ok := g.roster[userID]
	return p, ok
}

// GuessesExhausted is true when nothing is queued and every player other
// than the host has spent all their attempts.
func (g *Game) GuessesExhausted(hostID int64) bool {
	if g.guesses.Len() > 0 {
		return false
	}
	for id, p := range g.roster {
		if id == hostID {
			continue
		}
		if p.Attempts() > 0 {
			return false
		}
	}
	return true
}
