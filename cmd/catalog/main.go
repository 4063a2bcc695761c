package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"figure_catalog/internal/config"
	"figure_catalog/internal/db"
	"figure_catalog/internal/logger"
	"figure_catalog/internal/metrics"
	"figure_catalog/internal/seed"
	"figure_catalog/internal/server"
)

func main() {
	configPath := flag.String("config", "config.json", "path to JSON config")
	flag.Parse()

	logger.Init()
	defer logger.Log.Info("Application stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Log.Fatalf("Config load error: %v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Invalid config: %v", err)
	}

	// Инициализация БД
	database, err := db.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("DB connection error: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		logger.Log.Fatalf("DB schema error: %v", err)
	}

	// Начальный импорт каталога
	if cfg.SeedURL != "" {
		if _, err := seed.Run(ctx, database, cfg.SeedURL); err != nil {
			logger.Log.Errorf("Seed import failed: %v", err)
		}
	}

	// HTTP сервер
	srv := server.NewServer(database, cfg, metrics.New())
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Log.Infof("Starting HTTP server on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	ctxShutdown, cancelShutdown := context.WithTimeout(ctx, 5*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatalf("Forced shutdown: %v", err)
	}
}
