package main

import (
	"os"

	"go-erp/internal/app"
	"go-erp/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Lifecycle consumer: tails the employee lifecycle topic and records audits.
func main() {
	_ = godotenv.Load()

	logger, err := buildLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}

func buildLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
