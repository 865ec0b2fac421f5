package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-console/config"
	"task-console/internal/task/browser"
	"task-console/internal/task/delivery/tui"
	"task-console/internal/task/editor"
	"task-console/internal/task/repository/mockapi"
	"task-console/pkg/broadcast"
	"task-console/pkg/datemath"
	"task-console/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to stderr as JSON at warn and above.
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingJSON,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := mockapi.NewClient(cfg.TaskAPI.BaseURL, cfg.TaskAPI.AccessToken)
	taskRepo := mockapi.New(client, logger)

	changes := broadcast.New()
	taskBrowser := browser.New(logger, taskRepo, changes, browser.Options{
		PageSize:        cfg.Browser.PageSize,
		BulkDeleteDelay: cfg.Browser.BulkDeleteDelay,
	})
	defer taskBrowser.Close()

	taskEditor := editor.New(logger, taskRepo, changes, taskBrowser)

	dates, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Environment.Timezone, err)
		dates, _ = datemath.NewParser("")
	}

	if err := tui.Run(ctx, logger, taskBrowser, taskEditor, dates); err != nil {
		fmt.Fprintln(os.Stderr, "task console:", err)
		os.Exit(1)
	}
}
