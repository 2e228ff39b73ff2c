package hub

import (
	"context"
	"sync"
	"testing"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type disconnectRecorder struct {
	mu    sync.Mutex
	users []int64
	seen  chan int64
}

func newDisconnectRecorder() *disconnectRecorder {
	return &disconnectRecorder{seen: make(chan int64, 8)}
}

func (d *disconnectRecorder) HandleDisconnect(_ context.Context, userID int64) {
	d.mu.Lock()
	d.users = append(d.users, userID)
	d.mu.Unlock()
	d.seen <- userID
}

func fakeClient(userID int64) *domain.Client {
	return &domain.Client{
		ID:       uuid.New(),
		UserID:   userID,
		Nickname: "user",
		Send:     make(chan []byte, 4),
		Done:     make(chan struct{}),
	}
}

func received(c *domain.Client) [][]byte {
	var out [][]byte
	for {
		select {
		case msg := <-c.Send:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestHub_DeliverToUserReachesEveryConnection(t *testing.T) {
	t.Parallel()
	h := NewHub()
	first, second, other := fakeClient(1), fakeClient(1), fakeClient(2)
	h.registerClient(first)
	h.registerClient(second)
	h.registerClient(other)

	h.Deliver(notify.Destination{UserID: 1}, []byte("hello"))

	assert.Equal(t, [][]byte{[]byte("hello")}, received(first))
	assert.Equal(t, [][]byte{[]byte("hello")}, received(second))
	assert.Empty(t, received(other))
	assert.Equal(t, 2, h.ConnectionCount(1))
}

func TestHub_TopicDelivery(t *testing.T) {
	t.Parallel()
	h := NewHub()
	a, b := fakeClient(1), fakeClient(2)
	h.registerClient(a)
	h.registerClient(b)

	h.Subscribe(1, notify.RoomTopics(7)...)
	h.Deliver(notify.Destination{Topic: notify.RoomTopic(7)}, []byte("room"))
	h.Deliver(notify.Destination{Topic: notify.TopicLobby}, []byte("lobby"))

	assert.Equal(t, [][]byte{[]byte("room"), []byte("lobby")}, received(a))
	assert.Equal(t, [][]byte{[]byte("lobby")}, received(b))

	h.Unsubscribe(1, notify.RoomTopics(7)...)
	h.Deliver(notify.Destination{Topic: notify.ChatTopic(7)}, []byte("chat"))
	assert.Empty(t, received(a))
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()
	h := NewHub()
	c := fakeClient(1)
	h.registerClient(c)

	for i := 0; i < cap(c.Send)+3; i++ {
		h.Deliver(notify.Destination{UserID: 1}, []byte("x"))
	}
	assert.Len(t, received(c), cap(c.Send))
}

func TestHub_LastConnectionTriggersDisconnect(t *testing.T) {
	t.Parallel()
	h := NewHub()
	rec := newDisconnectRecorder()
	h.Attach(nil, rec)

	first, second := fakeClient(5), fakeClient(5)
	h.registerClient(first)
	h.registerClient(second)
	h.Subscribe(5, notify.RoomTopic(1))

	h.unregisterClient(first)
	select {
	case <-first.Done:
	default:
		t.Fatal("closed connection should be marked done")
	}
	select {
	case id := <-rec.seen:
		t.Fatalf("unexpected disconnect for %d while a connection remains", id)
	case <-time.After(50 * time.Millisecond):
	}

	h.Deliver(notify.Destination{Topic: notify.RoomTopic(1)}, []byte("still here"))
	assert.Len(t, received(second), 1)

	h.unregisterClient(second)
	select {
	case id := <-rec.seen:
		assert.Equal(t, int64(5), id)
	case <-time.After(time.Second):
		t.Fatal("disconnect handler was not called")
	}
	assert.Zero(t, h.ConnectionCount(5))

	h.mu.RLock()
	_, stillSubscribed := h.subscribers[notify.RoomTopic(1)]
	h.mu.RUnlock()
	assert.False(t, stillSubscribed)
}

func TestHub_UnregisterTwiceIsHarmless(t *testing.T) {
	t.Parallel()
	h := NewHub()
	rec := newDisconnectRecorder()
	h.Attach(nil, rec)
	c := fakeClient(3)
	h.registerClient(c)

	h.unregisterClient(c)
	require.NotPanics(t, func() { h.unregisterClient(c) })

	<-rec.seen
	select {
	case <-rec.seen:
		t.Fatal("disconnect ran twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_RegisterAfterShutdownReleasesClient(t *testing.T) {
	t.Parallel()
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	h.Run(ctx)
	cancel()
	<-h.done

	c := fakeClient(9)
	h.RegisterClient(c)
	select {
	case <-c.Done:
	case <-time.After(time.Second):
		t.Fatal("client should be released once the hub has stopped")
	}
}

func TestHub_UnregisterAfterShutdownReleasesClient(t *testing.T) {
	t.Parallel()
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	c := fakeClient(4)
	h.registerClient(c)
	h.Run(ctx)
	cancel()
	<-h.done

	h.UnregisterClient(c)
	select {
	case <-c.Done:
	case <-time.After(time.Second):
		t.Fatal("client should be released once the hub has stopped")
	}
	require.NotPanics(t, func() { h.UnregisterClient(c) })
	require.NotPanics(t, func() { h.unregisterClient(c) })
}

func TestHub_RelayRoutesByChannel(t *testing.T) {
	t.Parallel()
	h := NewHub()
	a := fakeClient(4)
	h.registerClient(a)
	h.Subscribe(4, notify.HistoryTopic(2))

	h.relay(notify.UserChannel(4), "direct")
	h.relay(notify.TopicChannel(notify.HistoryTopic(2)), "history")
	h.relay("unrelated", "ignored")

	assert.Equal(t, [][]byte{[]byte("direct"), []byte("history")}, received(a))
}
