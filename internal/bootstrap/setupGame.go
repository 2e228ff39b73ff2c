package bootstrap

import (
	"time"

	"riddle-service/infra/catalog"
	kafkaHandler "riddle-service/internal/api/kafka"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/game"
	"riddle-service/internal/notify"
	"riddle-service/internal/scheduler"
)

// Game holds the in-memory state every room command shares.
type Game struct {
	Registry   *game.Registry
	Deadlines  *scheduler.Scheduler
	Dispatcher *notify.Dispatcher
	Puzzles    *catalog.Catalog
	Recorders  wsUsecase.Recorders
	TimeUnit   time.Duration
}

func SetupGame(postgresRepo PostgresRepository, redisManager RedisManager, kafka Messaging, gameTopic string, timeUnit time.Duration) *Game {
	recorders := wsUsecase.Recorders{postgresRepo, redisManager}
	if kafka != nil {
		recorders = append(recorders, kafkaHandler.NewGameEndedRecorder(kafka, gameTopic))
	}

	return &Game{
		Registry:   game.NewRegistry(),
		Deadlines:  scheduler.New(),
		Dispatcher: notify.NewDispatcher(redisManager),
		Puzzles:    catalog.New(postgresRepo, redisManager),
		Recorders:  recorders,
		TimeUnit:   timeUnit,
	}
}
