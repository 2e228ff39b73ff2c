package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sentinel returned by Elapsed when no deadline is armed for a room.
const noElapsed = "00:00"

type deadline struct {
	startedAt time.Time
	cancel    context.CancelFunc
	fired     bool
}

// Scheduler keeps one round deadline per room.
type Scheduler struct {
	mu     sync.Mutex
	timers map[int64]*deadline
	now    func() time.Time
}

func New() *Scheduler {
	return &Scheduler{
		timers: make(map[int64]*deadline),
		now:    time.Now,
	}
}

// Arm schedules onTimeout to run once after d. Arming a room that already
// has a deadline replaces it. onTimeout runs on its own goroutine and must
// take the room lock itself.
func (s *Scheduler) Arm(roomID int64, d time.Duration, onTimeout func()) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	dl := &deadline{startedAt: s.now(), cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.timers[roomID]; ok {
		prev.cancel()
	}
	s.timers[roomID] = dl
	s.mu.Unlock()

	zap.L().Info("deadline armed", zap.Int64("room_id", roomID), zap.Duration("duration", d))

	go func() {
		<-ctx.Done()
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		if !s.claim(roomID, dl) {
			return
		}

		zap.L().Info("deadline reached", zap.Int64("room_id", roomID))
		onTimeout()

		s.mu.Lock()
		if s.timers[roomID] == dl {
			delete(s.timers, roomID)
		}
		s.mu.Unlock()
	}()
}

// claim marks dl as fired if it is still the room's current deadline.
func (s *Scheduler) claim(roomID int64, dl *deadline) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timers[roomID] != dl || dl.fired {
		return false
	}
	dl.fired = true
	return true
}

// Cancel stops the room's deadline. Safe to call when nothing is armed or
// the deadline already fired.
func (s *Scheduler) Cancel(roomID int64) {
	s.mu.Lock()
	dl, ok := s.timers[roomID]
	if ok {
		delete(s.timers, roomID)
	}
	s.mu.Unlock()

	if ok {
		dl.cancel()
	}
}

func (s *Scheduler) Armed(roomID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[roomID]
	return ok
}

// Elapsed formats the time since the room's deadline was armed as MM:SS.
func (s *Scheduler) Elapsed(roomID int64) string {
	s.mu.Lock()
	dl, ok := s.timers[roomID]
	s.mu.Unlock()
	if !ok {
		return noElapsed
	}

	elapsed := max(s.now().Sub(dl.startedAt), 0)
	secs := int64(elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
