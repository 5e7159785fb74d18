package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/config"
	"github.com/yukikurage/todolist-api/internal/handlers"
	"github.com/yukikurage/todolist-api/internal/repository"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: !cfg.IsProduction(),
	}))
	slog.SetDefault(log)

	// Set Gin mode
	gin.SetMode(cfg.GinMode())

	// Connect to the store selected by DATABASE_URL
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repository.Open(connectCtx, cfg.DatabaseURL, log)
	cancelConnect()
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	r := handlers.NewRouter(cfg, log, store.Users, store.Tasks)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", "error", err)
			exitCode = 1
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
		exitCode = 1
	}
	if err := store.Close(ctx); err != nil {
		log.Error("failed to close database", "error", err)
		exitCode = 1
	}

	log.Info("server stopped")
	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
