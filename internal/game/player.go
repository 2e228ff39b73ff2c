package game

import (
	"fmt"
	"sync"

	"riddle-service/domain"
)

// DefaultAttempts is how many guesses a player gets per round.
const DefaultAttempts = 3

// Player is a member of one room.
type Player struct {
	UserID   int64
	Nickname string

	mu       sync.Mutex
	role     domain.PlayerRole
	state    domain.PlayerState
	attempts int
}

func NewPlayer(userID int64, nickname string, role domain.PlayerRole) *Player {
	return &Player{
		UserID:   userID,
		Nickname: nickname,
		role:     role,
		state:    domain.PlayerReady,
		attempts: DefaultAttempts,
	}
}

func (p *Player) Role() domain.PlayerRole {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.role
}

func (p *Player) SetRole(role domain.PlayerRole) {
	p.mu.Lock()
	p.role = role
	p.mu.Unlock()
}

func (p *Player) State() domain.PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) SetState(state domain.PlayerState) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

func (p *Player) Attempts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts
}

// SpendAttempt uses up one guess. It fails once the player has none left.
func (p *Player) SpendAttempt() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attempts <= 0 {
		return fmt.Errorf("%w: no guess attempts left", domain.ErrInvalidInput)
	}
	p.attempts--
	return nil
}

func (p *Player) ResetAttempts() {
	p.mu.Lock()
	p.attempts = DefaultAttempts
	p.mu.Unlock()
}

func (p *Player) Response() domain.PlayerResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return domain.PlayerResponse{
		UserID:   p.UserID,
		Nickname: p.Nickname,
		Role:     p.role,
		State:    p.state,
		Attempts: p.attempts,
	}
}
