package cvbot

import "context"

// SearchResult is one ranked fact snippet with its provenance string.
type SearchResult struct {
	Score   float64  `json:"score"`
	Context string   `json:"context"`
	Text    string   `json:"content"`
	Skills  []string `json:"skills"`
}

// Retriever performs hybrid search over the fact corpus: an
// intent-aware filter narrows the candidates, then semantic similarity
// ranks them. Results are ordered highest score first with length at
// most topK.
type Retriever interface {
	Search(ctx context.Context, query, intent string, topK int) ([]SearchResult, error)
}
