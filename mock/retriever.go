package mock

import (
	"context"

	"github.com/tienn/cvbot"
)

var _ cvbot.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of cvbot.Retriever.
type Retriever struct {
	SearchFn func(ctx context.Context, query, intent string, topK int) ([]cvbot.SearchResult, error)
}

func (r *Retriever) Search(ctx context.Context, query, intent string, topK int) ([]cvbot.SearchResult, error) {
	return r.SearchFn(ctx, query, intent, topK)
}
