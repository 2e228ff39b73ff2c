package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/notify"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	disconnectTimeout = 10 * time.Second
)

type CommandRouter interface {
	Route(ctx context.Context, sender domain.Identity, msg domain.InboundMessage)
}

type DisconnectHandler interface {
	HandleDisconnect(ctx context.Context, userID int64)
}

// Hub owns this process's websocket connections. A user may hold several
// connections; topic subscriptions belong to the user, not the connection.
type Hub struct {
	mu          sync.RWMutex
	clients     map[int64]map[uuid.UUID]*domain.Client
	subscribers map[string]map[int64]struct{}

	register   chan *domain.Client
	unregister chan *domain.Client
	done       chan struct{}

	router      CommandRouter
	disconnects DisconnectHandler
}

func NewHub() *Hub {
	return &Hub{
		clients:     make(map[int64]map[uuid.UUID]*domain.Client),
		subscribers: make(map[string]map[int64]struct{}),
		register:    make(chan *domain.Client),
		unregister:  make(chan *domain.Client),
		done:        make(chan struct{}),
	}
}

// Attach sets where inbound commands and disconnects go. Call before Run.
func (h *Hub) Attach(router CommandRouter, disconnects DisconnectHandler) {
	h.router = router
	h.disconnects = disconnects
}

func (h *Hub) Run(ctx context.Context) {
	go func() {
		defer close(h.done)
		for {
			select {
			case client := <-h.register:
				h.registerClient(client)
				go h.readPump(ctx, client)
				go h.writePump(client)
			case client := <-h.unregister:
				h.unregisterClient(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) RegisterClient(client *domain.Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Release()
	}
}

func (h *Hub) UnregisterClient(client *domain.Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		client.Release()
	}
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mu.Lock()
	conns, ok := h.clients[client.UserID]
	if !ok {
		conns = make(map[uuid.UUID]*domain.Client)
		h.clients[client.UserID] = conns
	}
	conns[client.ID] = client
	h.subscribeLocked(client.UserID, notify.TopicLobby)
	h.mu.Unlock()

	zap.L().Debug("client registered", zap.Int64("user_id", client.UserID), zap.Int("connections", len(conns)))
}

// unregisterClient drops the connection. When it was the user's last one
// their subscriptions go too and the disconnect handler runs.
func (h *Hub) unregisterClient(client *domain.Client) {
	h.mu.Lock()
	conns, ok := h.clients[client.UserID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, exists := conns[client.ID]; !exists {
		h.mu.Unlock()
		return
	}
	delete(conns, client.ID)
	client.Release()

	last := len(conns) == 0
	if last {
		delete(h.clients, client.UserID)
		for topic, users := range h.subscribers {
			delete(users, client.UserID)
			if len(users) == 0 {
				delete(h.subscribers, topic)
			}
		}
	}
	h.mu.Unlock()

	zap.L().Debug("client unregistered", zap.Int64("user_id", client.UserID), zap.Bool("last", last))
	if last && h.disconnects != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
			defer cancel()
			h.disconnects.HandleDisconnect(ctx, client.UserID)
		}()
	}
}

func (h *Hub) Subscribe(userID int64, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribeLocked(userID, topics...)
}

func (h *Hub) subscribeLocked(userID int64, topics ...string) {
	for _, topic := range topics {
		users, ok := h.subscribers[topic]
		if !ok {
			users = make(map[int64]struct{})
			h.subscribers[topic] = users
		}
		users[userID] = struct{}{}
	}
}

func (h *Hub) Unsubscribe(userID int64, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range topics {
		users, ok := h.subscribers[topic]
		if !ok {
			continue
		}
		delete(users, userID)
		if len(users) == 0 {
			delete(h.subscribers, topic)
		}
	}
}

// Deliver writes an already encoded event to every local connection the
// destination covers. Slow connections drop the message.
func (h *Hub) Deliver(dest notify.Destination, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if dest.IsUser() {
		h.sendToUserLocked(dest.UserID, payload)
		return
	}
	for userID := range h.subscribers[dest.Topic] {
		h.sendToUserLocked(userID, payload)
	}
}

func (h *Hub) sendToUserLocked(userID int64, payload []byte) {
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- payload:
		default:
			zap.L().Warn("Client send channel is full, dropping message",
				zap.Int64("user_id", userID),
				zap.String("client_id", client.ID.String()))
		}
	}
}

func (h *Hub) ConnectionCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) sendError(client *domain.Client, reason string) {
	data, err := json.Marshal(domain.Message{Type: domain.EventError, Content: reason})
	if err != nil {
		return
	}
	select {
	case client.Send <- data:
	default:
	}
}

func (h *Hub) readPump(ctx context.Context, client *domain.Client) {
	defer func() {
		h.UnregisterClient(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	_ = client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	sender := domain.Identity{UserID: client.UserID, Nickname: client.Nickname}

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Warn("Client read error", zap.Int64("user_id", client.UserID), zap.Error(err))
			}
			return
		}

		var msg domain.InboundMessage
		if err := json.Unmarshal(payload, &msg); err != nil || msg.Type == "" {
			h.sendError(client, "malformed message")
			continue
		}
		if h.router != nil {
			h.router.Route(ctx, sender, msg)
		}
	}
}

func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg := <-client.Send:
			client.WriteLock.Lock()
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				zap.L().Warn("WebSocket write error", zap.Int64("user_id", client.UserID), zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}

		case <-client.Done:
			client.WriteLock.Lock()
			_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			client.WriteLock.Unlock()
			return
		}
	}
}
