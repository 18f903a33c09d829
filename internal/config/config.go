package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	Port           string
	RequestTimeout time.Duration

	// Rate limiting (RateLimitRPS 0 disables it)
	RateLimitRPS   float64
	RateLimitBurst int

	// Anthropic API
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string

	// OpenAI API (text and images)
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIImageModel string
	OpenAIBaseURL    string

	// Gemini API (text and Imagen)
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string

	// Timeouts for outbound calls
	FetchTimeout time.Duration
	LLMTimeout   time.Duration

	// Generation defaults
	DefaultVariantsPerPlatform int
	DefaultMaxImages           int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
		OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "imagen-3.0-generate-002"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	// Parse durations
	var err error
	cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	cfg.FetchTimeout, err = time.ParseDuration(getEnv("FETCH_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}

	cfg.LLMTimeout, err = time.ParseDuration(getEnv("LLM_TIMEOUT", "120s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}

	// Parse numbers
	cfg.DefaultVariantsPerPlatform, err = strconv.Atoi(getEnv("DEFAULT_VARIANTS_PER_PLATFORM", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_VARIANTS_PER_PLATFORM: %w", err)
	}

	cfg.DefaultMaxImages, err = strconv.Atoi(getEnv("DEFAULT_MAX_IMAGES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_MAX_IMAGES: %w", err)
	}

	cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.DefaultVariantsPerPlatform < 1 || c.DefaultVariantsPerPlatform > 10 {
		return fmt.Errorf("DEFAULT_VARIANTS_PER_PLATFORM must be between 1 and 10")
	}
	if c.DefaultMaxImages < 1 || c.DefaultMaxImages > 10 {
		return fmt.Errorf("DEFAULT_MAX_IMAGES must be between 1 and 10")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}
	return nil
}

// ValidateForServe checks configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT: %s", c.Port)
	}
	return nil
}

// HasTextBackend reports whether any LLM API key is set.
// Without one every request is answered from fallback data.
func (c *Config) HasTextBackend() bool {
	return c.AnthropicAPIKey != "" || c.OpenAIAPIKey != "" || c.GeminiAPIKey != ""
}

// HasImageBackend reports whether an image generation API key is set.
func (c *Config) HasImageBackend() bool {
	return c.OpenAIAPIKey != "" || c.GeminiAPIKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
