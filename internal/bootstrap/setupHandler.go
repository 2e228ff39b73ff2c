package bootstrap

import (
	"riddle-service/domain"
	httpHandler "riddle-service/internal/api/http/handler"
	httpUsecase "riddle-service/internal/api/http/usecase"
	kafkaHandler "riddle-service/internal/api/kafka"
	wsHandler "riddle-service/internal/api/ws/handler"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/handler"
	"riddle-service/internal/middleware"
	"riddle-service/pkg/messaging"
)

func SetupHTTPHandlers(g *Game, redisManager RedisManager) map[string]interface{} {
	getRoomsUseCase := httpUsecase.NewGetRoomsUseCase(wsUsecase.NewListRoomsUseCase(g.Registry))
	getRoomsHandler := httpHandler.NewGetRoomsHandler(getRoomsUseCase)

	getRankingUseCase := httpUsecase.NewGetRankingUseCase(redisManager)
	getRankingHandler := httpHandler.NewGetRankingHandler(getRankingUseCase)

	createPuzzleUseCase := httpUsecase.NewCreatePuzzleUseCase(redisManager)
	createPuzzleHandler := httpHandler.NewCreatePuzzleHandler(createPuzzleUseCase)

	return map[string]interface{}{
		"get-rooms":     getRoomsHandler,
		"get-ranking":   getRankingHandler,
		"create-puzzle": createPuzzleHandler,
	}
}

func SetupMessageHandlers(postgresRepository PostgresRepository) map[string]MessageHandler {
	createdUserUseCase := httpUsecase.NewCreateUserUseCase(postgresRepository)
	createdUserHandler := kafkaHandler.NewCreatedUserHandler(createdUserUseCase)

	return map[string]MessageHandler{
		messaging.MessageUserCreated: createdUserHandler,
	}
}

// SetupWSHandlers builds every command handler, registers them on a router
// and attaches the router to the hub.
func SetupWSHandlers(g *Game, postgresRepo PostgresRepository, wsHub Hub, limiter *middleware.RateLimiter) map[string]interface{} {
	n := g.Dispatcher

	leaveUseCase := wsUsecase.NewLeaveRoomUseCase(g.Registry, g.Deadlines, postgresRepo, g.Recorders)
	createUseCase := wsUsecase.NewCreateRoomUseCase(g.Registry, g.Puzzles, leaveUseCase)
	joinUseCase := wsUsecase.NewJoinRoomUseCase(g.Registry, leaveUseCase)
	listUseCase := wsUsecase.NewListRoomsUseCase(g.Registry)
	endUseCase := wsUsecase.NewEndGameUseCase(g.Registry, g.Deadlines, g.Recorders)
	endHandler := wsHandler.NewEndGameHandler(endUseCase, n)
	startUseCase := wsUsecase.NewStartGameUseCase(g.Registry, g.Deadlines, endHandler, g.TimeUnit)
	questionUseCase := wsUsecase.NewSendQuestionUseCase(g.Registry)
	respondQuestionUseCase := wsUsecase.NewRespondQuestionUseCase(g.Registry, postgresRepo)
	guessUseCase := wsUsecase.NewSendGuessUseCase(g.Registry)
	respondGuessUseCase := wsUsecase.NewRespondGuessUseCase(g.Registry, g.Deadlines, postgresRepo, g.Recorders)
	passUseCase := wsUsecase.NewPassTurnUseCase(g.Registry, postgresRepo)
	chatUseCase := wsUsecase.NewSendChatUseCase(g.Registry)

	leaveHandler := wsHandler.NewLeaveRoomHandler(leaveUseCase, n, wsHub, g.Registry)

	router := wsHandler.NewRouter(limiter, n)
	router.Handle(domain.CommandRoomCreate, handler.HandleWSCommand[wsHandler.CreateRoomRequest](wsHandler.NewCreateRoomHandler(createUseCase, n, wsHub), n))
	router.Handle(domain.CommandRoomJoin, handler.HandleWSCommand[wsHandler.JoinRoomRequest](wsHandler.NewJoinRoomHandler(joinUseCase, n, wsHub), n))
	router.Handle(domain.CommandRoomLeave, handler.HandleWSCommand[wsHandler.LeaveRoomRequest](leaveHandler, n))
	router.Handle(domain.CommandRoomList, handler.HandleWSCommand[wsHandler.ListRoomsRequest](wsHandler.NewListRoomsHandler(listUseCase, n), n))
	router.Handle(domain.CommandGameStart, handler.HandleWSCommand[wsHandler.StartGameRequest](wsHandler.NewStartGameHandler(startUseCase, n), n))
	router.Handle(domain.CommandQuestion, handler.HandleWSCommand[wsHandler.SendQuestionRequest](wsHandler.NewSendQuestionHandler(questionUseCase, n), n))
	router.Handle(domain.CommandRespondQuestion, handler.HandleWSCommand[wsHandler.RespondQuestionRequest](wsHandler.NewRespondQuestionHandler(respondQuestionUseCase, n), n))
	router.Handle(domain.CommandGuess, handler.HandleWSCommand[wsHandler.SendGuessRequest](wsHandler.NewSendGuessHandler(guessUseCase, n), n))
	router.Handle(domain.CommandRespondGuess, handler.HandleWSCommand[wsHandler.RespondGuessRequest](wsHandler.NewRespondGuessHandler(respondGuessUseCase, n), n))
	router.Handle(domain.CommandPassTurn, handler.HandleWSCommand[wsHandler.PassTurnRequest](wsHandler.NewPassTurnHandler(passUseCase, n), n))
	router.Handle(domain.CommandChat, handler.HandleWSCommand[wsHandler.SendChatRequest](wsHandler.NewSendChatHandler(chatUseCase, n), n))

	wsHub.Attach(router, disconnectChain{leave: leaveHandler, limiter: limiter})

	return map[string]interface{}{
		"connect": wsHandler.NewConnectHandler(wsHub),
	}
}
