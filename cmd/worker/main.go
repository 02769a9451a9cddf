package main

import (
	"os"

	"go-erp/internal/app"
	"go-erp/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Outbox publisher: drains pending lifecycle events into Kafka.
func main() {
	_ = godotenv.Load()

	logger, err := buildLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}

func buildLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
