package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	openAIBaseURL           = "https://api.openai.com/v1"
	defaultOpenAIModel      = "gpt-4-turbo-preview"
	defaultOpenAIImageModel = "dall-e-3"
	openAIImageSize         = "1024x1024"
	openAIImageQuality      = "standard"
)

// OpenAIConfig holds configuration for the OpenAI providers.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	ImageModel string
	BaseURL    string
	Timeout    time.Duration
}

func newOpenAIClient(cfg OpenAIConfig) *resty.Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = openAIBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
}

// openAIError is the error envelope returned by the API.
type openAIError struct {
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func openAIFailure(resp *resty.Response) error {
	var apiErr openAIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != nil {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode(), apiErr.Error.Message)
	}
	return fmt.Errorf("API error (status %d): %s", resp.StatusCode(), resp.String())
}

// OpenAIProvider generates text with the Chat Completions API.
type OpenAIProvider struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewOpenAIProvider creates a new chat completion provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client: newOpenAIClient(cfg),
		apiKey: cfg.APIKey,
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Available reports whether an API key is set.
func (p *OpenAIProvider) Available() bool {
	return p.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a chat completion request.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatRequest{
		Model:     p.model,
		Messages:  []chatMessage{{Role: "user", Content: req.Prompt}},
		MaxTokens: req.MaxTokens,
	}
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	if !resp.IsSuccess() {
		return "", openAIFailure(resp)
	}

	var chat chatResponse
	if err := json.Unmarshal(resp.Body(), &chat); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from API")
	}

	return chat.Choices[0].Message.Content, nil
}

// OpenAIImageProvider generates images with the Images API.
type OpenAIImageProvider struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewOpenAIImageProvider creates a new image provider.
func NewOpenAIImageProvider(cfg OpenAIConfig) *OpenAIImageProvider {
	model := cfg.ImageModel
	if model == "" {
		model = defaultOpenAIImageModel
	}

	return &OpenAIImageProvider{
		client: newOpenAIClient(cfg),
		apiKey: cfg.APIKey,
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIImageProvider) Name() string {
	return "openai-images"
}

// Available reports whether an API key is set.
func (p *OpenAIImageProvider) Available() bool {
	return p.apiKey != ""
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImage creates one square image and returns its URL.
func (p *OpenAIImageProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(imageRequest{
			Model:   p.model,
			Prompt:  prompt,
			N:       1,
			Size:    openAIImageSize,
			Quality: openAIImageQuality,
		}).
		Post("/images/generations")
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	if !resp.IsSuccess() {
		return "", openAIFailure(resp)
	}

	var images imageResponse
	if err := json.Unmarshal(resp.Body(), &images); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(images.Data) == 0 || images.Data[0].URL == "" {
		return "", fmt.Errorf("no image URL returned")
	}

	return images.Data[0].URL, nil
}
