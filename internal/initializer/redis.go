package initializer

import (
	"fmt"

	"riddle-service/config"
	"riddle-service/infra/redis"
	"riddle-service/infra/session"

	"go.uber.org/zap"
)

func redisAddress(appConfig config.Config) string {
	return fmt.Sprintf("%s:%s", appConfig.Redis.Host, appConfig.Redis.Port)
}

func InitRedis(appConfig config.Config) *redis.RedisManager {
	redisManager, err := redis.NewRedisManager(redisAddress(appConfig), appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Fatal("Failed to connect to redis", zap.Error(err))
	}
	return redisManager
}

func InitSessionRedis(appConfig config.Config) *session.SessionManager {
	sessionManager, err := session.NewSessionManager(redisAddress(appConfig), appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Fatal("Failed to connect to session store", zap.Error(err))
	}
	return sessionManager
}
