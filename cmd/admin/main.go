package main

import (
	"log"
	"time"

	"library-admin/app"
	"library-admin/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env load: %v", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
	app.Run(cfg)
}
