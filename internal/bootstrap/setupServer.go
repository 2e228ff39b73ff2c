package bootstrap

import (
	"time"

	"riddle-service/config"
	httpHandler "riddle-service/internal/api/http/handler"
	wsHandler "riddle-service/internal/api/ws/handler"
	"riddle-service/internal/handler"
	"riddle-service/internal/middleware"
	"riddle-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}, limiter *middleware.RateLimiter, sessions SessionManager) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		AllowOrigins: config.Server.AllowOrigins,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	getRoomsHandler := httpHandlers["get-rooms"].(*httpHandler.GetRoomsHandler)
	getRankingHandler := httpHandlers["get-ranking"].(*httpHandler.GetRankingHandler)
	createPuzzleHandler := httpHandlers["create-puzzle"].(*httpHandler.CreatePuzzleHandler)

	api := app.Group("", limiter.Middleware())
	api.Get("/rooms", handler.HandleWithFiber[httpHandler.GetRoomsRequest, httpHandler.GetRoomsResponse](getRoomsHandler))
	api.Get("/ranking", handler.HandleWithFiber[httpHandler.GetRankingRequest, httpHandler.GetRankingResponse](getRankingHandler))
	api.Post("/puzzles/custom", handler.HandleWithFiber[httpHandler.CreatePuzzleRequest, httpHandler.CreatePuzzleResponse](createPuzzleHandler))

	connectHandler := wsHandlers["connect"].(*wsHandler.ConnectHandler)
	app.Get("/ws",
		middleware.RequireUpgrade(),
		middleware.Identity(sessions, config.Server.TrustHeaders),
		handler.HandleWithFiberWS[wsHandler.ConnectRequest](connectHandler),
	)

	return app
}
