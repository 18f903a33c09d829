package llm

import (
	"context"
)

// CompletionRequest is a provider-agnostic text generation request.
type CompletionRequest struct {
	Prompt    string
	MaxTokens int
	// JSON asks the backend to bias its output toward a JSON document.
	JSON bool
}

// TextProvider generates text from a prompt.
type TextProvider interface {
	// Name returns the name of the backend.
	Name() string

	// Available reports whether the backend has credentials.
	Available() bool

	// Complete sends a single prompt and returns the raw text answer.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ImageProvider generates images from a description.
type ImageProvider interface {
	// Name returns the name of the backend.
	Name() string

	// Available reports whether the backend has credentials.
	Available() bool

	// GenerateImage creates one square image and returns its URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// TextChain is an ordered list of text providers.
// Only the first available one is ever used.
type TextChain []TextProvider

// Select returns the first available provider, or nil.
func (c TextChain) Select() TextProvider {
	for _, p := range c {
		if p != nil && p.Available() {
			return p
		}
	}
	return nil
}

// Names lists the available providers in priority order.
func (c TextChain) Names() []string {
	var names []string
	for _, p := range c {
		if p != nil && p.Available() {
			names = append(names, p.Name())
		}
	}
	return names
}

// ImageChain is an ordered list of image providers.
type ImageChain []ImageProvider

// Select returns the first available provider, or nil.
func (c ImageChain) Select() ImageProvider {
	for _, p := range c {
		if p != nil && p.Available() {
			return p
		}
	}
	return nil
}

// Names lists the available providers in priority order.
func (c ImageChain) Names() []string {
	var names []string
	for _, p := range c {
		if p != nil && p.Available() {
			names = append(names, p.Name())
		}
	}
	return names
}
