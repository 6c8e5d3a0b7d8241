package cvbot

import "context"

// Embedder maps text to fixed-length numeric vectors. The core depends
// only on this capability and never on a specific model implementation.
// Implementations should return EPROVIDER errors on backend failure.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one embedding per input text, index-aligned.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
