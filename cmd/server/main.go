package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/config"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	once := flag.Bool("once", false, "build the feed once, write outputs, and exit")
	flag.Parse()

	// Local overrides; missing .env is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-starting-five",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)

	if *once {
		if err := srv.RunOnce(ctx); err != nil {
			logging.Error(logger, "feed build failed", err)
			os.Exit(1)
		}
		return
	}

	srv.Run(ctx, stop)
}
