package wsHandler

import (
	"context"
	"fmt"
	"strconv"

	"riddle-service/domain"
	"riddle-service/internal/handler"

	"go.uber.org/zap"
)

// Router maps inbound command types to their handlers.
type Router struct {
	commands map[string]handler.CommandFunc
	limiter  RateLimiter
	notifier Notifier
}

func NewRouter(limiter RateLimiter, notifier Notifier) *Router {
	return &Router{
		commands: make(map[string]handler.CommandFunc),
		limiter:  limiter,
		notifier: notifier,
	}
}

func (r *Router) Handle(command string, fn handler.CommandFunc) {
	r.commands[command] = fn
}

func (r *Router) Route(ctx context.Context, sender domain.Identity, msg domain.InboundMessage) {
	fn, ok := r.commands[msg.Type]
	if !ok {
		zap.L().Warn("Unknown command", zap.Int64("user_id", sender.UserID), zap.String("command", msg.Type))
		r.notifier.SendToUser(ctx, sender.UserID, domain.EventError, fmt.Sprintf("unknown command %q", msg.Type))
		return
	}
	if r.limiter != nil && !r.limiter.Allow(strconv.FormatInt(sender.UserID, 10)) {
		r.notifier.SendToUser(ctx, sender.UserID, domain.EventError, "too many requests, slow down")
		return
	}
	fn(ctx, sender, msg.Content)
}
