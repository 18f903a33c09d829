package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel      = "gemini-2.0-flash"
	defaultGeminiImageModel = "imagen-3.0-generate-002"
)

// GeminiConfig holds configuration for the Gemini providers.
type GeminiConfig struct {
	APIKey     string
	Model      string
	ImageModel string
	BaseURL    string
	Timeout    time.Duration
}

func newGeminiClient(ctx context.Context, cfg GeminiConfig) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		timeout := cfg.Timeout
		clientCfg.HTTPOptions.Timeout = &timeout
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// GeminiProvider generates text with the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini text provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := newGeminiClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Available reports whether the client was created.
func (p *GeminiProvider) Available() bool {
	return p.client != nil
}

// Complete sends a generate content request.
func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	// Use the first candidate that carries text
	var text strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return text.String(), nil
}

// GeminiImageProvider generates images with Imagen through the Gemini API.
type GeminiImageProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiImageProvider creates a new Imagen provider.
func NewGeminiImageProvider(ctx context.Context, cfg GeminiConfig) (*GeminiImageProvider, error) {
	model := cfg.ImageModel
	if model == "" {
		model = defaultGeminiImageModel
	}

	client, err := newGeminiClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &GeminiImageProvider{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *GeminiImageProvider) Name() string {
	return "gemini-imagen"
}

// Available reports whether the client was created.
func (p *GeminiImageProvider) Available() bool {
	return p.client != nil
}

// GenerateImage creates one square image and returns it as a data URL.
// Imagen returns bytes rather than a hosted URL.
func (p *GeminiImageProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
	})
	if err != nil {
		return "", fmt.Errorf("generate images: %w", err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return "", fmt.Errorf("no image returned")
	}

	img := resp.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return "", fmt.Errorf("no image returned")
	}

	return DataURL(img.MIMEType, img.ImageBytes), nil
}

// DataURL encodes image bytes as a data URL.
func DataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
