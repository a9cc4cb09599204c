package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"enrollment-assistant/config"
	_ "enrollment-assistant/docs" // Swagger docs
	chatUC "enrollment-assistant/internal/chat/usecase"
	convSQLite "enrollment-assistant/internal/conversation/repository/sqlite"
	convUC "enrollment-assistant/internal/conversation/usecase"
	"enrollment-assistant/internal/httpserver"
	"enrollment-assistant/internal/responsecache"
	taskUC "enrollment-assistant/internal/task/usecase"
	"enrollment-assistant/pkg/backend"
	"enrollment-assistant/pkg/log"
)

// @title       Enrollment Assistant API
// @description Chat with response caching, persisted conversations and tracked email automation jobs.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Enrollment Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Backend client
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// 4. Conversation store
	stateRepo, err := convSQLite.Open(cfg.Storage.SQLitePath, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open conversation storage at %s: %v", cfg.Storage.SQLitePath, err)
		return
	}
	defer func() {
		if err := stateRepo.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close conversation storage: %v", err)
		}
	}()
	conversations := convUC.New(logger, stateRepo, backendClient)
	defer conversations.Wait()

	// 5. Chat
	chat := chatUC.New(logger, conversations, backendClient, responsecache.Config{
		TTL:            cfg.Cache.TTL,
		Capacity:       cfg.Cache.Capacity,
		MaxQueryLength: cfg.Cache.MaxQueryLength,
	}, cfg.Chat.Timeout)

	// 6. Task orchestrator
	tasks := taskUC.New(logger, backendClient, taskUC.Config{
		SingleInterval:   cfg.Task.SingleInterval,
		BulkInterval:     cfg.Task.BulkInterval,
		MaxBulkCount:     cfg.Task.MaxBulkCount,
		SubmitRatePerMin: cfg.Task.SubmitRatePerMin,
		InboxURL:         cfg.Task.InboxURL,
	})
	defer tasks.Close()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		Conversations:  conversations,
		Chat:           chat,
		Task:           tasks,
		ObserverBuffer: cfg.Task.ObserverBuffer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
