package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/abdulachik/viralkit/internal/health"
	"github.com/abdulachik/viralkit/internal/models"
)

const (
	failureMessage       = "Failed to generate marketing assets"
	missingFieldsMessage = "Missing required fields: product_name, niche, landing_url"
)

// Generator runs the marketing pipeline.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) *models.GenerationResult
}

// Backends names the configured providers, reported by /health.
type Backends struct {
	Text   []string `json:"text"`
	Images []string `json:"images"`
}

// Handler serves the generation endpoints.
type Handler struct {
	generator Generator
	health    *health.Tracker
	backends  Backends
	timeout   time.Duration
	version   string
}

// HandlerConfig holds the dependencies of a Handler.
type HandlerConfig struct {
	Generator      Generator
	Health         *health.Tracker
	Backends       Backends
	RequestTimeout time.Duration
	Version        string
}

// NewHandler creates a new Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	tracker := cfg.Health
	if tracker == nil {
		tracker = health.NewTracker()
	}
	version := cfg.Version
	if version == "" {
		version = "1.0.0"
	}
	return &Handler{
		generator: cfg.Generator,
		health:    tracker,
		backends:  cfg.Backends,
		timeout:   cfg.RequestTimeout,
		version:   version,
	}
}

// Generate handles POST /api/generate.
// Generation outcomes, including failed ones, are reported with 200.
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			if hasTag(verrs, "required") {
				c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldsMessage})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"details": "max_images and variants_per_platform must be at most 10",
			})
			return
		}

		slog.Warn("invalid request body", "request_id", c.GetString(requestIDKey), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   failureMessage,
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result := h.generator.Generate(ctx, req)
	c.JSON(http.StatusOK, result)
}

// Info handles GET /api/generate.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Organic Marketing Agent API",
		"version": h.version,
		"endpoints": gin.H{
			"POST /api/generate": "Generate marketing assets from product details",
		},
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	status := "ok"
	if !h.health.Healthy() {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"backends":  h.backends,
		"providers": h.health.Snapshot(),
	})
}

func hasTag(errs validator.ValidationErrors, tag string) bool {
	for _, fe := range errs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
