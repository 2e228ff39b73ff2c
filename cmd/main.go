package main

import (
	"riddle-service/config"
	"riddle-service/internal/bootstrap"
	"riddle-service/log"

	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()
	log.SetDebug(appConfig.App.Debug)
	defer zap.L().Sync()
	zap.L().Info("app starting...", zap.String("app name", appConfig.App.Name))

	app := bootstrap.NewApp(appConfig)

	app.Start()
}
