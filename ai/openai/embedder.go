package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scholarmatch/scholarmatch/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder implements ai.Embedder over an OpenAI-compatible embeddings API.
// Every returned vector is checked against the configured
// EmbeddingDimension, so downstream scoring never sees a wrong-width vector.
type Embedder struct {
	embedder  embeddings.Embedder
	dimension int
	logger    *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local OpenAI-compatible servers (Ollama, LocalAI) accept any token
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder:  embedder,
		dimension: config.EmbeddingDimension,
		logger:    slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// checkWidth rejects vectors that don't match the configured dimension.
func (e *Embedder) checkWidth(vector []float32) error {
	if len(vector) != e.dimension {
		return fmt.Errorf("%w: got %d values, want %d", ai.ErrMalformedEmbedding, len(vector), e.dimension)
	}
	return nil
}

// EmbedText encodes one text into a vector of the configured width.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("encoding text", "length", len(text))

	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("embedding request failed", "err", err)
		return nil, err
	}

	if len(vectors) == 0 {
		e.logger.Error("embedding service returned no vector")
		return nil, fmt.Errorf("%w: empty result", ai.ErrMalformedEmbedding)
	}

	if err := e.checkWidth(vectors[0]); err != nil {
		e.logger.Error("embedding service returned wrong-width vector", "err", err)
		return nil, err
	}

	return vectors[0], nil
}

// EmbedTexts encodes a batch of texts, preserving input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("encoding batch", "count", len(texts))

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("embedding request failed", "count", len(texts), "err", err)
		return nil, err
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", ai.ErrMalformedEmbedding, len(vectors), len(texts))
	}

	for _, vector := range vectors {
		if err := e.checkWidth(vector); err != nil {
			e.logger.Error("embedding service returned wrong-width vector", "err", err)
			return nil, err
		}
	}

	return vectors, nil
}
