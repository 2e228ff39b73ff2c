package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"riddle-service/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionPrefix = "session:"

// SessionManager resolves gateway-issued session tokens.
type SessionManager struct {
	client *redis.Client
}

type sessionData struct {
	UserID   int64  `json:"id"`
	Nickname string `json:"nickname"`
}

func NewSessionManager(redisAddr string, password string, db int) (*SessionManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	zap.L().Info("Connected to session store successfully", zap.String("addr", redisAddr))
	return &SessionManager{
		client: client,
	}, nil
}

func (sm *SessionManager) GetRedisClient() *redis.Client {
	return sm.client
}

func (sm *SessionManager) Close() error {
	return sm.client.Close()
}

// GetSession returns the identity a token belongs to.
func (sm *SessionManager) GetSession(ctx context.Context, token string) (domain.Identity, error) {
	raw, err := sm.client.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Identity{}, fmt.Errorf("%w: unknown session", domain.ErrUnauthorized)
		}
		return domain.Identity{}, fmt.Errorf("%w: session lookup failed: %v", domain.ErrInternal, err)
	}

	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil || data.UserID <= 0 {
		return domain.Identity{}, fmt.Errorf("%w: malformed session", domain.ErrUnauthorized)
	}
	return domain.Identity{UserID: data.UserID, Nickname: data.Nickname}, nil
}
