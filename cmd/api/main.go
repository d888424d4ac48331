package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohammadpnp/creations-admin/internal/bootstrap"
	"github.com/mohammadpnp/creations-admin/internal/config"
	"github.com/mohammadpnp/creations-admin/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	deps, closeDeps, err := bootstrap.Connect(context.Background(), cfg, logger)
	if err != nil {
		closeDeps()
		logger.Fatal("connect dependencies", zap.Error(err))
	}
	defer closeDeps()

	server := bootstrap.NewHTTPServer(cfg, deps)

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Environment))
		if err := server.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
