package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubText struct {
	name      string
	available bool
}

func (s *stubText) Name() string    { return s.name }
func (s *stubText) Available() bool { return s.available }
func (s *stubText) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return s.name, nil
}

type stubImage struct {
	name      string
	available bool
}

func (s *stubImage) Name() string    { return s.name }
func (s *stubImage) Available() bool { return s.available }
func (s *stubImage) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "https://img/" + s.name, nil
}

func TestTextChain_Select(t *testing.T) {
	t.Run("first available wins", func(t *testing.T) {
		chain := TextChain{
			&stubText{name: "anthropic", available: false},
			&stubText{name: "openai", available: true},
			&stubText{name: "gemini", available: true},
		}

		p := chain.Select()
		assert.NotNil(t, p)
		assert.Equal(t, "openai", p.Name())
		assert.Equal(t, []string{"openai", "gemini"}, chain.Names())
	})

	t.Run("none available", func(t *testing.T) {
		chain := TextChain{&stubText{name: "anthropic"}}
		assert.Nil(t, chain.Select())
		assert.Empty(t, chain.Names())
	})

	t.Run("empty chain", func(t *testing.T) {
		var chain TextChain
		assert.Nil(t, chain.Select())
	})
}

func TestImageChain_Select(t *testing.T) {
	chain := ImageChain{
		&stubImage{name: "openai-images", available: true},
		&stubImage{name: "gemini-imagen", available: true},
	}

	p := chain.Select()
	assert.NotNil(t, p)
	assert.Equal(t, "openai-images", p.Name())
	assert.Equal(t, []string{"openai-images", "gemini-imagen"}, chain.Names())

	assert.Nil(t, ImageChain{&stubImage{name: "x"}}.Select())
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,AQID", DataURL("image/jpeg", []byte{1, 2, 3}))
	assert.Equal(t, "data:image/png;base64,AQID", DataURL("", []byte{1, 2, 3}))
}
