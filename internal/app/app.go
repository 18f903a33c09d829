package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/viralkit/internal/agent"
	"github.com/abdulachik/viralkit/internal/api"
	"github.com/abdulachik/viralkit/internal/config"
	"github.com/abdulachik/viralkit/internal/engine"
	"github.com/abdulachik/viralkit/internal/fileproc"
	"github.com/abdulachik/viralkit/internal/health"
	"github.com/abdulachik/viralkit/internal/llm"
)

// Version is reported by the API info endpoint.
const Version = "1.0.0"

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Health    *health.Tracker
	Engine    *engine.Engine
	Extractor *fileproc.Extractor
	Agent     *agent.Agent
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	text, images, err := Providers(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.HasTextBackend() {
		slog.Warn("no text provider configured, all copy will come from fallback templates")
	}
	if !cfg.HasImageBackend() {
		slog.Info("no image provider configured, assets will be text only")
	}

	tracker := health.NewTracker()

	eng := engine.New(engine.Config{
		Text:   text,
		Images: images,
		Health: tracker,
	})

	extractor := fileproc.NewExtractor()

	ag := agent.New(agent.Config{
		Generator:        eng,
		Fetcher:          fileproc.NewFetcher(fileproc.FetcherConfig{Timeout: cfg.FetchTimeout}),
		Extractor:        extractor,
		DefaultVariants:  cfg.DefaultVariantsPerPlatform,
		DefaultMaxImages: cfg.DefaultMaxImages,
	})

	slog.Debug("providers configured", "text", text.Names(), "images", images.Names())

	return &App{
		Config:    cfg,
		Health:    tracker,
		Engine:    eng,
		Extractor: extractor,
		Agent:     ag,
	}, nil
}

// Providers builds the text and image chains in priority order.
// Only providers with credentials are added.
func Providers(ctx context.Context, cfg *config.Config) (llm.TextChain, llm.ImageChain, error) {
	var text llm.TextChain
	var images llm.ImageChain

	if cfg.AnthropicAPIKey != "" {
		text = append(text, llm.NewAnthropicProvider(llm.AnthropicConfig{
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			BaseURL: cfg.AnthropicBaseURL,
			Timeout: cfg.LLMTimeout,
		}))
	}

	if cfg.OpenAIAPIKey != "" {
		openAICfg := llm.OpenAIConfig{
			APIKey:     cfg.OpenAIAPIKey,
			Model:      cfg.OpenAIModel,
			ImageModel: cfg.OpenAIImageModel,
			BaseURL:    cfg.OpenAIBaseURL,
			Timeout:    cfg.LLMTimeout,
		}
		text = append(text, llm.NewOpenAIProvider(openAICfg))
		images = append(images, llm.NewOpenAIImageProvider(openAICfg))
	}

	if cfg.GeminiAPIKey != "" {
		geminiCfg := llm.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			ImageModel: cfg.GeminiImageModel,
			Timeout:    cfg.LLMTimeout,
		}

		gemini, err := llm.NewGeminiProvider(ctx, geminiCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("create gemini provider: %w", err)
		}
		text = append(text, gemini)

		imagen, err := llm.NewGeminiImageProvider(ctx, geminiCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("create imagen provider: %w", err)
		}
		images = append(images, imagen)
	}

	return text, images, nil
}

// Handler builds the HTTP handler for serve mode.
func (a *App) Handler() *api.Handler {
	return api.NewHandler(api.HandlerConfig{
		Generator: a.Agent,
		Health:    a.Health,
		Backends: api.Backends{
			Text:   a.Engine.TextBackends(),
			Images: a.Engine.ImageBackends(),
		},
		RequestTimeout: a.Config.RequestTimeout,
		Version:        Version,
	})
}

// Server builds the HTTP server for serve mode.
func (a *App) Server() *api.Server {
	return api.NewServer(api.ServerConfig{
		Port:           a.Config.Port,
		RateLimitRPS:   a.Config.RateLimitRPS,
		RateLimitBurst: a.Config.RateLimitBurst,
	}, a.Handler())
}
