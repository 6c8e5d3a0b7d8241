// Package gemini provides Google Gemini implementations of the
// cvbot.Embedder and cvbot.Asker capabilities.
package gemini

import (
	"context"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/tienn/cvbot"
)

// DefaultEmbeddingModel is the embedding model used when none is
// configured.
const DefaultEmbeddingModel = "gemini-embedding-001"

// DefaultRequestsPerSecond is the default embedding API rate limit.
const DefaultRequestsPerSecond = 10

// Ensure Embedder implements cvbot.Embedder at compile time.
var _ cvbot.Embedder = (*Embedder)(nil)

// Embedder implements cvbot.Embedder using the Gemini embedding API.
// Calls are rate-limited; backend failures surface as EPROVIDER.
type Embedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithModel sets the embedding model.
// Defaults to DefaultEmbeddingModel if not specified.
func WithModel(model string) Option {
	return func(e *Embedder) {
		e.model = model
	}
}

// WithLimiter sets the API rate limiter.
// Defaults to DefaultRequestsPerSecond with burst 1 if not specified.
func WithLimiter(l *rate.Limiter) Option {
	return func(e *Embedder) {
		e.limiter = l
	}
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client, opts ...Option) *Embedder {
	e := &Embedder{
		client:  client,
		model:   DefaultEmbeddingModel,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// EmbedBatch returns one embedding per input text, index-aligned.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	return e.embed(ctx, texts)
}

func (e *Embedder) embed(ctx context.Context, texts []string) ([][]float32, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, &genai.Content{
			Parts: []*genai.Part{{Text: text}},
		})
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, cvbot.Errorf(cvbot.EPROVIDER, "gemini embed: %v", err)
	}
	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, cvbot.Errorf(cvbot.EPROVIDER, "gemini embed: expected %d embeddings, got result %v", len(texts), result)
	}

	embeddings := make([][]float32, 0, len(texts))
	for _, embedding := range result.Embeddings {
		if embedding == nil || len(embedding.Values) == 0 {
			return nil, cvbot.Errorf(cvbot.EPROVIDER, "gemini embed: empty embedding in response")
		}
		embeddings = append(embeddings, embedding.Values)
	}
	return embeddings, nil
}
