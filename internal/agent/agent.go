package agent

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abdulachik/viralkit/internal/fileproc"
	"github.com/abdulachik/viralkit/internal/models"
)

// ErrDecode is returned when an inline product file is not valid base64.
var ErrDecode = errors.New("failed to decode product file")

// imagesPerPlatform caps how many variants of one platform get a picture.
const imagesPerPlatform = 2

const (
	DefaultVariantsPerPlatform = 3
	DefaultMaxImages           = 3
)

// Generator produces research, copy and images.
type Generator interface {
	AnalyzeProduct(ctx context.Context, content, name, niche, landingURL string) models.MarketInsights
	GenerateAssets(ctx context.Context, name, niche, landingURL string, insights models.MarketInsights, platform models.Platform, n int) []models.MarketingAsset
	GenerateImage(ctx context.Context, prompt string) (string, bool)
	HasImageBackend() bool
}

// Fetcher downloads remote product files.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Agent runs the full marketing pipeline for one request.
type Agent struct {
	generator        Generator
	fetcher          Fetcher
	extractor        *fileproc.Extractor
	defaultVariants  int
	defaultMaxImages int
}

// Config holds the collaborators of an Agent.
type Config struct {
	Generator        Generator
	Fetcher          Fetcher
	Extractor        *fileproc.Extractor
	DefaultVariants  int
	DefaultMaxImages int
}

// New creates a new Agent.
func New(cfg Config) *Agent {
	extractor := cfg.Extractor
	if extractor == nil {
		extractor = fileproc.NewExtractor()
	}

	variants := cfg.DefaultVariants
	if variants <= 0 {
		variants = DefaultVariantsPerPlatform
	}

	maxImages := cfg.DefaultMaxImages
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}

	return &Agent{
		generator:        cfg.Generator,
		fetcher:          cfg.Fetcher,
		extractor:        extractor,
		defaultVariants:  variants,
		defaultMaxImages: maxImages,
	}
}

// ApplyDefaults fills unset counts with the configured defaults.
func (a *Agent) ApplyDefaults(req *models.GenerationRequest) {
	if req.VariantsPerPlatform <= 0 {
		req.VariantsPerPlatform = a.defaultVariants
	}
	if req.MaxImages <= 0 {
		req.MaxImages = a.defaultMaxImages
	}
}

// Generate runs the pipeline. It always returns a result; content
// resolution errors and cancellation produce a failed one.
func (a *Agent) Generate(ctx context.Context, req models.GenerationRequest) *models.GenerationResult {
	start := time.Now()
	a.ApplyDefaults(&req)

	logger := slog.With("product_id", req.ProductID)
	logger.Info("generation started",
		"product", req.ProductName,
		"niche", req.Niche,
		"variants", req.VariantsPerPlatform,
		"max_images", req.MaxImages,
	)

	content, err := a.resolveContent(ctx, req)
	if err != nil {
		logger.Error("failed to resolve product content", "error", err)
		return models.Failed(req.ProductID, err)
	}
	logger.Debug("content resolved", "chars", len(content))

	insights := a.generator.AnalyzeProduct(ctx, content, req.ProductName, req.Niche, req.LandingURL)

	withImages := a.generator.HasImageBackend()
	assets := make([]models.MarketingAsset, 0, len(models.Platforms)*req.MaxImages)

	for _, p := range models.Platforms {
		if err := ctx.Err(); err != nil {
			logger.Warn("generation cancelled", "platform", p, "error", err)
			return models.Failed(req.ProductID, fmt.Errorf("generation cancelled: %w", err))
		}

		generated := a.generator.GenerateAssets(ctx, req.ProductName, req.Niche, req.LandingURL, insights, p, req.VariantsPerPlatform)
		kept := generated[:min(len(generated), req.MaxImages)]

		images := 0
		if withImages {
			for i := range kept {
				if i >= imagesPerPlatform {
					break
				}
				if url, ok := a.generator.GenerateImage(ctx, kept[i].ImagePrompt); ok {
					kept[i].ImageURL = url
					images++
				}
			}
		}

		logger.Info("platform complete", "platform", p, "generated", len(generated), "kept", len(kept), "images", images)
		assets = append(assets, kept...)
	}

	logger.Info("generation complete", "assets", len(assets), "duration", time.Since(start).Round(time.Millisecond))

	return &models.GenerationResult{
		ProductID:        req.ProductID,
		Status:           models.StatusSuccess,
		Assets:           assets,
		ResearchInsights: insights,
	}
}

// resolveContent turns the request's product file into text.
func (a *Agent) resolveContent(ctx context.Context, req models.GenerationRequest) (string, error) {
	switch {
	case req.HasRemoteFile():
		if a.fetcher == nil {
			return "", fmt.Errorf("%w: no fetcher configured", fileproc.ErrFetch)
		}
		data, err := a.fetcher.Fetch(ctx, req.ProductFileURL)
		if err != nil {
			return "", err
		}
		return a.extractor.Extract(data, fileproc.DetectFileType(req.ProductFileURL, data))

	case req.HasInlineFile():
		data, err := DecodeBase64(req.ProductFileBase64)
		if err != nil {
			return "", err
		}
		return a.extractor.Extract(data, fileproc.ParseFileType(req.ProductFileType))

	default:
		return fmt.Sprintf("Product: %s\nNiche: %s", req.ProductName, req.Niche), nil
	}
}

// DecodeBase64 decodes standard or URL-safe base64, padded or not.
// Whitespace and a leading data URL header are ignored.
func DecodeBase64(s string) ([]byte, error) {
	if i := strings.Index(s, ";base64,"); i != -1 && strings.HasPrefix(s, "data:") {
		s = s[i+len(";base64,"):]
	}
	s = strings.Join(strings.Fields(s), "")

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}

	var lastErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(s)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrDecode, lastErr)
}
