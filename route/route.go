// Package route implements the semantic guardrail router. Every anchor
// example is embedded once at construction; routing a query is a single
// embedding call plus a nearest-anchor cosine scan.
package route

import (
	"context"

	"github.com/tienn/cvbot"
)

// DefaultThreshold is the minimum cosine similarity an anchor must
// reach for a query to be allowed. It is a tunable operating point, not
// a structural constant.
const DefaultThreshold = 0.35

// Ensure Router implements cvbot.Router at compile time.
var _ cvbot.Router = (*Router)(nil)

// Router classifies queries by nearest-anchor cosine similarity.
// Immutable after construction; safe for concurrent use.
type Router struct {
	embedder  cvbot.Embedder
	threshold float64

	// intents, examples and embeddings are parallel-indexed: one entry
	// per flattened (intent, example) pair.
	intents    []string
	examples   []string
	embeddings [][]float32
}

// Option configures a Router.
type Option func(*Router)

// WithThreshold sets the similarity threshold.
// Defaults to DefaultThreshold if not specified.
func WithThreshold(t float64) Option {
	return func(r *Router) {
		r.threshold = t
	}
}

// New builds a Router from an anchor set, embedding every example.
// An empty anchor set or an intent with zero examples is fatal: a
// partially built router must never serve queries.
func New(ctx context.Context, embedder cvbot.Embedder, anchors cvbot.AnchorSet, opts ...Option) (*Router, error) {
	if err := anchors.Validate(); err != nil {
		return nil, err
	}

	r := &Router{
		embedder:  embedder,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}

	// Flatten in sorted-intent order so the first-occurrence tie-break
	// is deterministic across runs.
	for _, intent := range anchors.Intents() {
		for _, example := range anchors[intent] {
			r.intents = append(r.intents, intent)
			r.examples = append(r.examples, example)
		}
	}

	embeddings, err := embedder.EmbedBatch(ctx, r.examples)
	if err != nil {
		return nil, err
	}
	if len(embeddings) != len(r.examples) {
		return nil, cvbot.Errorf(cvbot.EPROVIDER, "anchor embedding count mismatch: got %d, want %d", len(embeddings), len(r.examples))
	}
	r.embeddings = embeddings

	return r, nil
}

// Route embeds the query and selects the single highest-scoring anchor.
// Ties are broken by first-occurrence order in the flattened anchor
// sequence. A best score below the threshold denies the query with
// reason out_of_scope; a score exactly equal to the threshold is
// allowed.
func (r *Router) Route(ctx context.Context, query string) (*cvbot.RouteDecision, error) {
	if query == "" {
		return nil, cvbot.Errorf(cvbot.EINVALID, "query required")
	}

	queryEmbedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	best := -1
	bestScore := 0.0
	for i, anchor := range r.embeddings {
		// Strict > keeps the earliest index on ties.
		if score := cvbot.Cosine(queryEmbedding, anchor); best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	if bestScore < r.threshold {
		return &cvbot.RouteDecision{
			Allowed: false,
			Score:   bestScore,
			Reason:  cvbot.ReasonOutOfScope,
		}, nil
	}

	return &cvbot.RouteDecision{
		Allowed: true,
		Intent:  r.intents[best],
		Score:   bestScore,
	}, nil
}
