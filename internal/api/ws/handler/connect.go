package wsHandler

import (
	"context"

	"riddle-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sendBuffer = 256

type ConnectRequest struct{}

// ConnectHandler hands an upgraded connection to the hub and holds it open
// until the hub lets go.
type ConnectHandler struct {
	hub ClientHub
}

func NewConnectHandler(hub ClientHub) *ConnectHandler {
	return &ConnectHandler{hub: hub}
}

func (h *ConnectHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *ConnectRequest) {
	identity, ok := c.Locals(domain.IdentityLocal).(domain.Identity)
	if !ok || identity.UserID <= 0 {
		h.sendErrorAndClose(c, domain.ErrUnauthorized.Error(), fiber.StatusUnauthorized)
		return
	}

	client := &domain.Client{
		ID:       uuid.New(),
		UserID:   identity.UserID,
		Nickname: identity.Nickname,
		Send:     make(chan []byte, sendBuffer),
		Conn:     c,
		Done:     make(chan struct{}),
	}
	h.hub.RegisterClient(client)
	zap.L().Info("client connected", zap.Int64("user_id", client.UserID), zap.String("client_id", client.ID.String()))

	<-client.Done
}

func (h *ConnectHandler) sendErrorAndClose(conn *websocket.Conn, msg string, code int) {
	errorMessage := domain.WebSocketErrorMessage{
		Type:    domain.EventError,
		Message: msg,
		Code:    code,
	}
	if err := conn.WriteJSON(errorMessage); err != nil {
		zap.L().Warn("Failed to send error message to client", zap.Error(err))
	}
	conn.Close()
}
