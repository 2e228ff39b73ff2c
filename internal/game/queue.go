package game

import (
	"sync"

	"riddle-service/domain"
)

// GuessAttempt is a submitted guess waiting to be judged.
type GuessAttempt struct {
	SenderID int64
	Guess    string
	Status   domain.AnswerStatus
}

// GuessQueue is a FIFO of pending guesses, safe for concurrent use.
type GuessQueue struct {
	mu    sync.Mutex
	items []GuessAttempt
}

func (q *GuessQueue) Push(a GuessAttempt) {
	q.mu.Lock()
	q.items = append(q.items, a)
	q.mu.Unlock()
}

// Peek returns the oldest guess without removing it.
func (q *GuessQueue) Peek() (GuessAttempt, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return GuessAttempt{}, false
	}
	return q.items[0], true
}

func (q *GuessQueue) Pop() (GuessAttempt, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return GuessAttempt{}, false
	}
	head := q.items[0]
	q.items[0] = GuessAttempt{}
	q.items = q.items[1:]
	return head, true
}

// RemoveSender drops every queued guess from senderID and reports how many
// went.
func (q *GuessQueue) RemoveSender(senderID int64) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.items[:0]
	for _, a := range q.items {
		if a.SenderID != senderID {
			kept = append(kept, a)
		}
	}
	removed := len(q.items) - len(kept)
	clear(q.items[len(kept):])
	q.items = kept
	return removed
}

func (q *GuessQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
