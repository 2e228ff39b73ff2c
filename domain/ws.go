package domain

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type WebSocketErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// Client is one websocket connection. A user may hold several.
type Client struct {
	ID        uuid.UUID
	UserID    int64
	Nickname  string
	Send      chan []byte
	Conn      *websocket.Conn
	WriteLock sync.Mutex
	Done      chan struct{}

	release sync.Once
}

// Release closes Done. Safe to call more than once.
func (c *Client) Release() {
	c.release.Do(func() { close(c.Done) })
}

// Message is the envelope for everything written to a client.
type Message struct {
	Type    string `json:"type"`
	Topic   string `json:"topic,omitempty"`
	Content any    `json:"content"`
}

// InboundMessage is a command read from a client.
type InboundMessage struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

// Identity is the authenticated user bound to a connection.
type Identity struct {
	UserID   int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// IdentityLocal is the fiber locals key the authenticated Identity is
// stored under before a websocket upgrade.
const IdentityLocal = "identity"
