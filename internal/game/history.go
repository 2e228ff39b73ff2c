package game

import (
	"sync"

	"riddle-service/domain"
)

// History is the append-only transcript of a round.
type History struct {
	mu      sync.RWMutex
	records []domain.QnA
}

func (h *History) Append(r domain.QnA) {
	h.mu.Lock()
	h.records = append(h.records, r)
	h.mu.Unlock()
}

// Snapshot returns a copy; callers can't reach the underlying slice.
func (h *History) Snapshot() []domain.QnA {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.QnA, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Last() (domain.QnA, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.records) == 0 {
		return domain.QnA{}, false
	}
	return h.records[len(h.records)-1], true
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
