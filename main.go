package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"items-service/config"
	"items-service/controllers"
	"items-service/logging"
	"items-service/repository"
	"items-service/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New("items", cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Sync()

	client, err := config.ConnectMongoDB(context.Background(), cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	db := config.Database(client, cfg.Mongo)
	items := controllers.NewItemController(repository.NewItemRepository(db), logger)
	info := controllers.NewInfoController(cfg.App.Version)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           routes.SetupRoutes(items, info, logger),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown", zap.Error(err))
	}
	if err := config.DisconnectMongoDB(ctx, client); err != nil {
		logger.Error("MongoDB disconnect", zap.Error(err))
	}
	logger.Info("server stopped")
}
