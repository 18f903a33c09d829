package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/abdulachik/viralkit/internal/health"
	"github.com/abdulachik/viralkit/internal/llm"
	"github.com/abdulachik/viralkit/internal/models"
	"github.com/abdulachik/viralkit/internal/platform"
)

const (
	// maxContentRunes bounds how much product material is sent for analysis.
	maxContentRunes = 8000

	analysisMaxTokens = 4000
	assetMaxTokens    = 3000

	defaultEngagementScore = 50
	minEngagementScore     = 1
	maxEngagementScore     = 100
)

// Engine turns product material into research and platform copy.
type Engine struct {
	text   llm.TextChain
	images llm.ImageChain
	health *health.Tracker
}

// Config holds the backends used by the engine.
type Config struct {
	Text   llm.TextChain
	Images llm.ImageChain
	Health *health.Tracker
}

// New creates a new Engine.
func New(cfg Config) *Engine {
	tracker := cfg.Health
	if tracker == nil {
		tracker = health.NewTracker()
	}
	return &Engine{
		text:   cfg.Text,
		images: cfg.Images,
		health: tracker,
	}
}

// HasImageBackend reports whether an image provider is configured.
func (e *Engine) HasImageBackend() bool {
	return e.images.Select() != nil
}

// TextBackends lists the configured text providers in priority order.
func (e *Engine) TextBackends() []string {
	return e.text.Names()
}

// ImageBackends lists the configured image providers in priority order.
func (e *Engine) ImageBackends() []string {
	return e.images.Names()
}

// AnalyzeProduct derives market research for a product.
// It never fails: any problem yields FallbackInsights.
func (e *Engine) AnalyzeProduct(ctx context.Context, content, name, niche, landingURL string) models.MarketInsights {
	provider := e.text.Select()
	if provider == nil {
		slog.Warn("no text provider configured, using fallback insights")
		return FallbackInsights()
	}

	prompt := fmt.Sprintf(AnalysisPrompt, name, niche, landingURL, truncateRunes(content, maxContentRunes))

	answer, err := e.complete(ctx, provider, llm.CompletionRequest{
		Prompt:    prompt,
		MaxTokens: analysisMaxTokens,
		JSON:      true,
	})
	if err != nil {
		slog.Warn("analysis failed, using fallback insights", "provider", provider.Name(), "error", err)
		return FallbackInsights()
	}

	var insights models.MarketInsights
	if err := llm.DecodeJSON(answer, &insights); err != nil {
		slog.Warn("analysis returned invalid JSON, using fallback insights", "provider", provider.Name(), "error", err)
		return FallbackInsights()
	}
	insights.Normalize()

	slog.Debug("analysis complete",
		"provider", provider.Name(),
		"trends", len(insights.NicheTrends),
		"keywords", len(insights.KeywordClusters),
	)

	return insights
}

// GenerateAssets writes n post variants for one platform.
// It never fails: any problem yields FallbackAssets.
func (e *Engine) GenerateAssets(ctx context.Context, name, niche, landingURL string, insights models.MarketInsights, platformName models.Platform, n int) []models.MarketingAsset {
	provider := e.text.Select()
	if provider == nil {
		slog.Warn("no text provider configured, using fallback assets", "platform", platformName)
		return FallbackAssets(platformName, n, name, landingURL)
	}

	answer, err := e.complete(ctx, provider, llm.CompletionRequest{
		Prompt:    BuildAssetPrompt(name, niche, landingURL, insights, platformName, n),
		MaxTokens: assetMaxTokens,
		JSON:      true,
	})
	if err != nil {
		slog.Warn("asset generation failed, using fallback assets",
			"provider", provider.Name(), "platform", platformName, "error", err)
		return FallbackAssets(platformName, n, name, landingURL)
	}

	variants, err := parseVariants(answer)
	if err != nil {
		slog.Warn("asset generation returned invalid JSON, using fallback assets",
			"provider", provider.Name(), "platform", platformName, "error", err)
		return FallbackAssets(platformName, n, name, landingURL)
	}
	if len(variants) == 0 {
		slog.Warn("asset generation returned no variants, using fallback assets",
			"provider", provider.Name(), "platform", platformName)
		return FallbackAssets(platformName, n, name, landingURL)
	}

	assets := make([]models.MarketingAsset, 0, len(variants))
	for i, v := range variants {
		assets = append(assets, v.toAsset(platformName, i+1))
	}

	slog.Debug("assets generated", "provider", provider.Name(), "platform", platformName, "count", len(assets))

	return assets
}

// GenerateImage asks the image provider for one picture.
// Failures are logged and reported as ("", false).
func (e *Engine) GenerateImage(ctx context.Context, prompt string) (string, bool) {
	provider := e.images.Select()
	if provider == nil {
		return "", false
	}

	url, err := provider.GenerateImage(ctx, prompt)
	if err != nil {
		e.health.Failure(provider.Name(), err)
		slog.Warn("image generation failed", "provider", provider.Name(), "error", err)
		return "", false
	}
	e.health.Success(provider.Name())

	if url == "" {
		return "", false
	}
	return url, true
}

func (e *Engine) complete(ctx context.Context, provider llm.TextProvider, req llm.CompletionRequest) (string, error) {
	answer, err := provider.Complete(ctx, req)
	if err != nil {
		e.health.Failure(provider.Name(), err)
		return "", err
	}
	e.health.Success(provider.Name())
	return answer, nil
}

// BuildAssetPrompt fills the copywriting prompt for one platform.
func BuildAssetPrompt(name, niche, landingURL string, insights models.MarketInsights, platformName models.Platform, n int) string {
	spec := platform.Lookup(string(platformName))
	audience := insights.TargetAudience

	return fmt.Sprintf(AssetPrompt,
		n, platformName,
		name, niche, landingURL,
		audience.Demographics,
		joinFirst(audience.PainPoints, 3),
		joinFirst(audience.Desires, 3),
		joinFirst(insights.ViralElements, 3),
		joinFirst(insights.KeywordClusters, 5),
		spec.CharLimit, spec.HashtagStrategy, spec.BestPractices,
		n,
	)
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// variant is a post as returned by the model, before normalization.
type variant struct {
	Caption         string   `json:"caption"`
	Hashtags        []string `json:"hashtags"`
	ImagePrompt     string   `json:"image_prompt"`
	CTA             string   `json:"cta"`
	BestPostingTime string   `json:"best_posting_time"`
	EngagementScore score    `json:"engagement_score"`
}

func (v variant) toAsset(p models.Platform, index int) models.MarketingAsset {
	hashtags := v.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	engagement := int(v.EngagementScore)
	if engagement == 0 {
		engagement = defaultEngagementScore
	}

	return models.MarketingAsset{
		Platform:        p,
		VariantIndex:    index,
		Caption:         v.Caption,
		Hashtags:        hashtags,
		ImagePrompt:     v.ImagePrompt,
		CTA:             v.CTA,
		BestPostingTime: v.BestPostingTime,
		EngagementScore: engagement,
	}
}

// score accepts a JSON number or a numeric string in 1..100.
// Anything else decodes as zero.
type score int

func (s *score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = scoreFrom(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*s = scoreFrom(f)
		}
	}

	return nil
}

func scoreFrom(f float64) score {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	r := math.Round(f)
	if r < minEngagementScore || r > maxEngagementScore {
		return 0
	}
	return score(r)
}

// parseVariants decodes a bare array or an object wrapping it
// under "variants" or "assets".
func parseVariants(answer string) ([]variant, error) {
	var raw json.RawMessage
	if err := llm.DecodeJSON(answer, &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty JSON document")
	}

	switch raw[0] {
	case '[':
		var list []variant
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode variant list: %w", err)
		}
		return list, nil
	case '{':
		var wrapper struct {
			Variants []variant `json:"variants"`
			Assets   []variant `json:"assets"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("decode variant object: %w", err)
		}
		if wrapper.Variants != nil {
			return wrapper.Variants, nil
		}
		if wrapper.Assets != nil {
			return wrapper.Assets, nil
		}
		return nil, fmt.Errorf("no variants in response object")
	default:
		return nil, fmt.Errorf("unexpected JSON document")
	}
}
