package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-console/config"
	_ "task-console/docs" // Swagger docs
	"task-console/internal/httpserver"
	"task-console/internal/model"
	"task-console/internal/task/browser"
	"task-console/internal/task/editor"
	"task-console/internal/task/repository/mockapi"
	"task-console/pkg/broadcast"
	"task-console/pkg/log"
)

// @title       Task Console API
// @description List, search, page, create, edit and delete tasks stored behind a remote REST resource.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Task Console...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task API: %s", cfg.TaskAPI.BaseURL)

	// 3. Task domain
	client := mockapi.NewClient(cfg.TaskAPI.BaseURL, cfg.TaskAPI.AccessToken)
	taskRepo := mockapi.New(client, logger)

	changes := broadcast.New()
	taskBrowser := browser.New(logger, taskRepo, changes, browser.Options{
		PageSize:        cfg.Browser.PageSize,
		BulkDeleteDelay: cfg.Browser.BulkDeleteDelay,
	})
	defer taskBrowser.Close()

	taskEditor := editor.New(logger, taskRepo, changes, taskBrowser)

	// A failed first load is not fatal: the list stays empty until a reload succeeds.
	if err := taskBrowser.Start(ctx, model.ListHint{}); err != nil {
		logger.Warnf(ctx, "Initial task load failed: %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Browser:        taskBrowser,
		Editor:         taskEditor,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
