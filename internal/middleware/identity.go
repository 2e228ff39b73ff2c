package middleware

import (
	"context"
	"strconv"
	"strings"

	"riddle-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	HeaderUserID       = "X-User-Id"
	HeaderUserNickname = "X-User-Nickname"
)

type SessionLookup interface {
	GetSession(ctx context.Context, token string) (domain.Identity, error)
}

// Identity resolves who is connecting and stores it under
// domain.IdentityLocal. Gateway headers win when trusted; otherwise the
// token query parameter is looked up in the session store.
func Identity(sessions SessionLookup, trustHeaders bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if trustHeaders {
			if identity, ok := identityFromHeaders(c); ok {
				c.Locals(domain.IdentityLocal, identity)
				return c.Next()
			}
		}

		token := c.Query("token")
		if token == "" || sessions == nil {
			return unauthorized(c)
		}
		identity, err := sessions.GetSession(c.UserContext(), token)
		if err != nil {
			zap.L().Warn("Session lookup failed", zap.String("code", domain.ErrorCode(err)), zap.Error(err))
			return unauthorized(c)
		}
		c.Locals(domain.IdentityLocal, identity)
		return c.Next()
	}
}

func identityFromHeaders(c *fiber.Ctx) (domain.Identity, bool) {
	raw := strings.TrimSpace(c.Get(HeaderUserID))
	if raw == "" {
		return domain.Identity{}, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return domain.Identity{}, false
	}
	nickname := strings.TrimSpace(c.Get(HeaderUserNickname))
	if nickname == "" {
		nickname = "user-" + raw
	}
	return domain.Identity{UserID: id, Nickname: nickname}, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": domain.ErrUnauthorized.Error(),
		"code":  domain.CodeUnauthorized,
	})
}

// RequireUpgrade rejects plain HTTP requests on websocket routes.
func RequireUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
