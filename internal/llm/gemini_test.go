package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		p, err := NewGeminiProvider(ctx, GeminiConfig{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "gemini", p.Name())
		assert.Equal(t, defaultGeminiModel, p.model)
		assert.True(t, p.Available())
		assert.Nil(t, p.client.ClientConfig().HTTPOptions.Timeout)

		img, err := NewGeminiImageProvider(ctx, GeminiConfig{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, defaultGeminiImageModel, img.model)
	})

	t.Run("timeout and base url applied", func(t *testing.T) {
		cfg := GeminiConfig{
			APIKey:  "k",
			BaseURL: "http://localhost:9999/",
			Timeout: 5 * time.Second,
		}

		p, err := NewGeminiProvider(ctx, cfg)
		require.NoError(t, err)
		opts := p.client.ClientConfig().HTTPOptions
		require.NotNil(t, opts.Timeout)
		assert.Equal(t, 5*time.Second, *opts.Timeout)
		assert.Equal(t, "http://localhost:9999/", opts.BaseURL)

		img, err := NewGeminiImageProvider(ctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, img.client.ClientConfig().HTTPOptions.Timeout)
		assert.Equal(t, 5*time.Second, *img.client.ClientConfig().HTTPOptions.Timeout)
	})
}
