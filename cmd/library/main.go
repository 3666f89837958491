package main

import (
	"errors"
	"flag"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/turnthepage/library-service/library/app"
	"github.com/turnthepage/library-service/library/config"
	"go.uber.org/zap/zapcore"
)

// @title TURN THE PAGE Library API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	inMemory := flag.Bool("memory", false, "keep all data in process memory instead of postgres")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	opts := []config.Option{
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	}
	if *inMemory {
		opts = append(opts, config.WithMemoryStorage())
	}

	app.Run(config.NewConfig(opts...))
}
