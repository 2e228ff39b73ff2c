package game

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"riddle-service/domain"
)

// MinPlayersToStart is the smallest room that can start a round.
const MinPlayersToStart = 2

// Room is a lobby around one puzzle. Everything below mu is guarded by it;
// callers take the lock around any check-then-act sequence.
type Room struct {
	ID         int64
	MaxPlayers int
	TimeLimit  int
	Title      string

	mu      sync.RWMutex
	State   domain.RoomState
	HostID  int64
	Puzzle  *domain.Puzzle
	Game    *Game
	order   []int64
	players map[int64]*Player
}

func NewRoom(id int64, maxPlayers, timeLimit int, title string, puzzle *domain.Puzzle) *Room {
	return &Room{
		ID:         id,
		MaxPlayers: maxPlayers,
		TimeLimit:  timeLimit,
		Title:      title,
		State:      domain.RoomWaiting,
		Puzzle:     puzzle,
		players:    make(map[int64]*Player),
	}
}

func (r *Room) Lock()    { r.mu.Lock() }
func (r *Room) Unlock()  { r.mu.Unlock() }
func (r *Room) RLock()   { r.mu.RLock() }
func (r *Room) RUnlock() { r.mu.RUnlock() }

func (r *Room) PlayerCount() int { return len(r.players) }

func (r *Room) IsEmpty() bool { return len(r.players) == 0 }

func (r *Room) IsFull() bool { return len(r.players) >= r.MaxPlayers }

func (r *Room) HasPlayer(userID int64) bool {
	_, ok := r.players[userID]
	return ok
}

func (r *Room) Player(userID int64) (*Player, bool) {
	p, ok := r.players[userID]
	return p, ok
}

// CanJoin is true only while waiting with a free seat.
func (r *Room) CanJoin() bool {
	return r.State == domain.RoomWaiting && !r.IsFull()
}

// Order returns member ids in join order.
func (r *Room) Order() []int64 { return slices.Clone(r.order) }

// Members returns a copy of the member map.
func (r *Room) Members() map[int64]*Player { return maps.Clone(r.players) }

// Players returns members in join order.
func (r *Room) Players() []*Player {
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// AddPlayer seats a new member. The first member becomes the host.
func (r *Room) AddPlayer(p *Player) error {
	if r.HasPlayer(p.UserID) {
		return fmt.Errorf("%w: already in room %d", domain.ErrInvalidInput, r.ID)
	}
	if !r.CanJoin() {
		return fmt.Errorf("%w: room %d can not be joined", domain.ErrInvalidInput, r.ID)
	}
	r.players[p.UserID] = p
	r.order = append(r.order, p.UserID)
	if r.HostID == 0 {
		r.HostID = p.UserID
		p.SetRole(domain.RoleHost)
	}
	return nil
}

// Departure describes what a RemovePlayer call changed.
type Departure struct {
	Player  *Player
	NewHost *Player
	Emptied bool
}

// RemovePlayer takes a member out of the room, handing the host role to the
// earliest remaining joiner when needed.
func (r *Room) RemovePlayer(userID int64) (Departure, bool) {
	p, ok := r.players[userID]
	if !ok {
		return Departure{}, false
	}
	delete(r.players, userID)
	r.order = slices.DeleteFunc(r.order, func(id int64) bool { return id == userID })

	d := Departure{Player: p, Emptied: len(r.players) == 0}
	if userID == r.HostID {
		r.HostID = 0
		if !d.Emptied {
			next := r.players[r.order[0]]
			r.HostID = next.UserID
			if r.Game == nil {
				next.SetRole(domain.RoleHost)
			}
			d.NewHost = next
		}
	}
	return d, true
}

// EndRound drops the current game and makes the room reusable.
func (r *Room) EndRound() {
	r.Game = nil
	r.State = domain.RoomWaiting
	for id, p := range r.players {
		if id == r.HostID {
			p.SetRole(domain.RoleHost)
		} else {
			p.SetRole(domain.RoleParticipant)
		}
		p.SetState(domain.PlayerReady)
		p.ResetAttempts()
	}
}

// Response renders the room. The puzzle answer is included only for the
// host view.
func (r *Room) Response(withAnswer bool) domain.RoomResponse {
	res := domain.RoomResponse{
		RoomID:         r.ID,
		Title:          r.Title,
		MaxPlayers:     r.MaxPlayers,
		CurrentPlayers: len(r.players),
		TimeLimit:      r.TimeLimit,
		State:          r.State,
		HostID:         r.HostID,
		Players:        make([]domain.PlayerResponse, 0, len(r.order)),
	}
	if r.Puzzle != nil {
		pz := *r.Puzzle
		if !withAnswer {
			pz.Answer = ""
		}
		res.Puzzle = &pz
	}
	for _, p := range r.Players() {
		res.Players = append(res.Players, p.Response())
	}
	return res
}
