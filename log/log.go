// Package log installs the process-wide zap logger.
package log

import (
	"go.uber.org/zap"
)

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// SetDebug swaps the global logger for the development config.
func SetDebug(debug bool) {
	if !debug {
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		zap.L().Warn("Failed to build development logger", zap.Error(err))
		return
	}
	zap.ReplaceGlobals(logger)
}
