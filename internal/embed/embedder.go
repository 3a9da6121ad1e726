// Package embed wraps the external embedding capability used for semantic
// deduplication. Vectors are computed once per candidate batch and reused
// for the internal check, the corpus check, and persistence.
package embed

import (
	"context"
	"fmt"
	"os"
)

// Embedder computes fixed-dimension embedding vectors for text.
type Embedder interface {
	// Embed returns the vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one vector per input text, in input order. One
	// network call per batch.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the embedding model identifier.
	ModelName() string

	// Dims returns the vector dimensionality the model produces.
	Dims() int
}

// Config selects and configures the embedding backend.
type Config struct {
	// Provider selects the backend: "gemini", "openai", "mock".
	Provider string

	// Model is the embedding model name; each backend has its default.
	Model string

	// APIKey authenticates against the backend.
	APIKey string
}

// ConfigFromEnv builds a Config from QUIZFORGE_* environment variables. The
// embedding provider defaults to gemini, independently of the text provider.
func ConfigFromEnv() Config {
	cfg := Config{Provider: "gemini"}

	if p := os.Getenv("QUIZFORGE_EMBED_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("QUIZFORGE_EMBED_MODEL"); m != "" {
		cfg.Model = m
	}

	switch cfg.Provider {
	case "gemini":
		cfg.APIKey = firstEnv("QUIZFORGE_GEMINI_API_KEY", "GEMINI_API_KEY")
	case "openai":
		cfg.APIKey = firstEnv("QUIZFORGE_OPENAI_API_KEY", "OPENAI_API_KEY")
	}

	return cfg
}

// New creates an Embedder from configuration.
func New(ctx context.Context, cfg Config) (Embedder, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiEmbedder(ctx, cfg)
	case "openai":
		return NewOpenAIEmbedder(cfg)
	case "mock":
		return NewMockEmbedder(), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
