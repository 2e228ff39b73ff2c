package middleware

import (
	"sync"
	"time"

	"riddle-service/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	config config.RateLimitConfig

	// Global rate limiter
	globalLimiter *rate.Limiter

	// Per-user rate limiters
	userLimiters sync.Map
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config:        cfg,
		globalLimiter: newLimiter(cfg.RequestsPerMinute, cfg.Burst),
	}
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

func (rl *RateLimiter) getOrCreateUserLimiter(key string) *rate.Limiter {
	limiter, _ := rl.userLimiters.LoadOrStore(key, newLimiter(rl.config.UserRequestsPerMinute, rl.config.UserBurst))
	return limiter.(*rate.Limiter)
}

// Allow reports whether the user identified by key may send another
// websocket command.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getOrCreateUserLimiter(key).Allow()
}

// Forget drops a user's limiter once they have no connections left.
func (rl *RateLimiter) Forget(key string) {
	rl.userLimiters.Delete(key)
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.globalLimiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Global rate limit exceeded",
			})
		}
		return c.Next()
	}
}
