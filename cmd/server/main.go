package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-placement/api"
	"github.com/saeidalz13/battleship-placement/db"
	"github.com/saeidalz13/battleship-placement/db/sqlc"
	"github.com/saeidalz13/battleship-placement/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	opts := []api.Option{
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithGridSize(cfg.GridSize),
		api.WithAllowedOrigins(cfg.AllowedOrigins...),
	}

	if cfg.AnalyticsEnabled() {
		dbManager := sqlc.NewDbManager(db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir))
		defer dbManager.Close()
		opts = append(opts, api.WithAnalytics(dbManager.Analytics))
	} else {
		log.Println("DATABASE_URL is empty; placement analytics disabled")
	}

	server, err := api.NewServer(opts...)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Fatalln(err)
	}
}
