package bootstrap

import (
	"context"
	"time"

	"riddle-service/config"
	"riddle-service/internal/middleware"
	"riddle-service/internal/server"
	"riddle-service/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config          config.Config
	postgresRepo    PostgresRepository
	redisManager    RedisManager
	sessionManager  SessionManager
	kafka           Messaging
	hub             Hub
	game            *Game
	limiter         *middleware.RateLimiter
	fiberApp        *fiber.App
	httpHandlers    map[string]interface{}
	wsHandlers      map[string]interface{}
	messageHandlers map[string]MessageHandler
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.postgresRepo = InitDatabase(a.config)
	a.redisManager = InitRedis(a.config)
	a.sessionManager = InitSessionRedis(a.config)
	a.kafka = SetupMessaging(a.config)
	a.messageHandlers = SetupMessageHandlers(a.postgresRepo)
	a.hub = InitWebsocket()
	a.limiter = middleware.NewRateLimiter(a.config.RateLimit)
	a.game = SetupGame(a.postgresRepo, a.redisManager, a.kafka, a.config.Kafka.GameTopic, a.config.Game.TimeUnit)
	a.wsHandlers = SetupWSHandlers(a.game, a.postgresRepo, a.hub, a.limiter)
	a.httpHandlers = SetupHTTPHandlers(a.game, a.redisManager)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers, a.limiter, a.sessionManager)
}

func (a *App) Start() {
	ctx, cancel := context.WithCancel(context.Background())

	a.hub.Run(ctx)
	go a.hub.Listen(ctx, a.redisManager.Client())
	if a.kafka != nil {
		StartConsumers(ctx, a.kafka, a.config, a.messageHandlers)
	}

	go func() {
		if err := server.Start(a.fiberApp, a.config.Server.Host, a.config.Server.Port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, ctx)
	cancel()
	a.close()
}

func (a *App) close() {
	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka client", zap.Error(err))
		}
	}
	if err := a.sessionManager.Close(); err != nil {
		zap.L().Error("Failed to close session store", zap.Error(err))
	}
	if err := a.redisManager.Close(); err != nil {
		zap.L().Error("Failed to close redis", zap.Error(err))
	}
	if err := a.postgresRepo.Close(); err != nil {
		zap.L().Error("Failed to close database", zap.Error(err))
	}
}
