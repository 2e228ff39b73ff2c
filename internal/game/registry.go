package game

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"riddle-service/domain"
	"go.uber.org/zap"
)

// Registry holds every live room and the user -> room index. It never holds
// its own lock while taking a room's lock, so callers may use it while
// holding one.
type Registry struct {
	mu        sync.RWMutex
	rooms     map[int64]*Room
	userRooms map[int64]int64
	lastID    atomic.Int64
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:     make(map[int64]*Room),
		userRooms: make(map[int64]int64),
	}
}

// NextID hands out room ids. Ids are never reused.
func (rg *Registry) NextID() int64 {
	return rg.lastID.Add(1)
}

func (rg *Registry) Get(roomID int64) (*Room, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	room, ok := rg.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: room %d", domain.ErrNotFound, roomID)
	}
	return room, nil
}

func (rg *Registry) Put(room *Room) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if _, exists := rg.rooms[room.ID]; !exists {
		zap.L().Info("room registered", zap.Int64("room_id", room.ID))
	}
	rg.rooms[room.ID] = room
}

func (rg *Registry) Delete(roomID int64) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	delete(rg.rooms, roomID)
	zap.L().Info("room deleted", zap.Int64("room_id", roomID))
}

func (rg *Registry) CurrentRoomOf(userID int64) (int64, bool) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	id, ok := rg.userRooms[userID]
	return id, ok
}

func (rg *Registry) BindUser(userID, roomID int64) {
	rg.mu.Lock()
	rg.userRooms[userID] = roomID
	rg.mu.Unlock()
}

func (rg *Registry) UnbindUser(userID int64) {
	rg.mu.Lock()
	delete(rg.userRooms, userID)
	rg.mu.Unlock()
}

// ListAll returns rooms ordered by id.
func (rg *Registry) ListAll() []*Room {
	return rg.list(func(*Room) bool { return true })
}

// ListByState filters on the room state. State is read under each room's
// read lock.
func (rg *Registry) ListByState(state domain.RoomState) []*Room {
	return rg.list(func(r *Room) bool {
		r.RLock()
		defer r.RUnlock()
		return r.State == state
	})
}

func (rg *Registry) list(keep func(*Room) bool) []*Room {
	rg.mu.RLock()
	rooms := make([]*Room, 0, len(rg.rooms))
	for _, r := range rg.rooms {
		rooms = append(rooms, r)
	}
	rg.mu.RUnlock()

	rooms = slices.DeleteFunc(rooms, func(r *Room) bool { return !keep(r) })
	slices.SortFunc(rooms, func(a, b *Room) int { return cmp.Compare(a.ID, b.ID) })
	return rooms
}
