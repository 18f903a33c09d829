package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abdulachik/viralkit/internal/app"
	"github.com/abdulachik/viralkit/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API that accepts generation requests on POST /api/generate.
The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	slog.Info("starting viralkit API",
		"port", cfg.Port,
		"text_providers", a.Engine.TextBackends(),
		"image_providers", a.Engine.ImageBackends(),
		"request_timeout", cfg.RequestTimeout,
		"rate_limit_rps", cfg.RateLimitRPS,
	)

	if err := a.Server().Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("shutdown complete")
	return nil
}
