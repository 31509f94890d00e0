package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdlibiran/gradecalculator/app/config"
	"github.com/kdlibiran/gradecalculator/app/logger"
	"github.com/kdlibiran/gradecalculator/app/server"
	"github.com/kdlibiran/gradecalculator/app/services"
	"github.com/kdlibiran/gradecalculator/app/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sessions live in memory only; nothing survives a restart.
	store := session.NewStore(cfg.Session.TTL)
	schedulerDone := services.StartScheduler(ctx, store, cfg.Session.SweepEvery, logg)

	app := server.New(cfg, logg, store)

	go func() {
		<-ctx.Done()
		logg.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logg.Error("Server shutdown failed", "error", err)
		}
	}()

	logg.Info("Server starting", "addr", cfg.Addr(), "env", cfg.Env)
	if err := app.Listen(cfg.Addr()); err != nil {
		logg.Fatal("Server stopped", "error", err)
	}
	stop()
	<-schedulerDone
}
