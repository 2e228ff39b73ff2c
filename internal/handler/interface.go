package handler

import (
	"context"

	"riddle-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

type FiberHandler[R Request, Res Response] interface {
	Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *R) (*Res, int, error)
}

type FiberWSHandler[R Request] interface {
	HandleWS(c *websocket.Conn, ctx context.Context, req *R)
}

// WSCommandHandler runs one inbound websocket command for sender.
type WSCommandHandler[R Request] interface {
	Handle(ctx context.Context, sender domain.Identity, req *R) error
}

// ErrorNotifier delivers ERROR events back to the user who sent a command.
type ErrorNotifier interface {
	SendToUser(ctx context.Context, userID int64, event string, payload any)
}
