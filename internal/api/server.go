package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP front of the generator.
type Server struct {
	router *gin.Engine
	addr   string
}

// ServerConfig holds configuration for the server.
type ServerConfig struct {
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewServer builds the router with its middleware and routes.
func NewServer(cfg ServerConfig, h *Handler) *Server {
	router := gin.New()
	router.Use(
		RequestID(),
		Logger(),
		Recovery(),
	)

	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		api.GET("/generate", h.Info)
		api.POST("/generate", h.Generate)
	}

	return &Server{
		router: router,
		addr:   ":" + cfg.Port,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
