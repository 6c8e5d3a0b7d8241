// Package search implements the hybrid retrieval engine. An
// intent-aware filter narrows the corpus to relevant candidates first,
// then semantic similarity ranks only that subset. Pure semantic search
// over-retrieves generic text for precise skill/category queries; pure
// filtering misses paraphrased relevance. Filtering first bounds the
// similarity computation without re-embedding the corpus per query.
package search

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tienn/cvbot"
)

const (
	// DefaultTopK is the result count used when the caller passes a
	// non-positive topK.
	DefaultTopK = 3

	// DefaultConcurrency bounds parallel embedding calls during
	// construction.
	DefaultConcurrency = 4

	// embedBatchSize is the number of fact texts sent per provider call.
	embedBatchSize = 32
)

// Ensure Engine implements cvbot.Retriever at compile time.
var _ cvbot.Retriever = (*Engine)(nil)

// Engine ranks intent-filtered facts by embedding similarity. The
// corpus and its embeddings are fixed at construction and index-aligned;
// the Engine never mutates the shared corpus.
type Engine struct {
	embedder    cvbot.Embedder
	matcher     cvbot.SkillMatcher
	concurrency int

	facts      []*cvbot.AtomicFact
	embeddings [][]float32
	skills     []string // sorted distinct normalized vocabulary
}

// Option configures an Engine.
type Option func(*Engine)

// WithMatcher sets the skill detection strategy.
// Defaults to cvbot.SubstringMatcher if not specified.
func WithMatcher(m cvbot.SkillMatcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithConcurrency bounds parallel embedding calls at construction.
// Defaults to DefaultConcurrency if not specified.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// New builds an Engine, embedding every fact's text once and collecting
// the distinct skill vocabulary for query-time detection. Invalid facts
// and an empty corpus are fatal.
func New(ctx context.Context, embedder cvbot.Embedder, facts []*cvbot.AtomicFact, opts ...Option) (*Engine, error) {
	if len(facts) == 0 {
		return nil, cvbot.Errorf(cvbot.ECONFIG, "fact corpus is empty")
	}

	e := &Engine{
		embedder:    embedder,
		matcher:     cvbot.SubstringMatcher{},
		concurrency: DefaultConcurrency,
		facts:       facts,
	}
	for _, opt := range opts {
		opt(e)
	}

	seen := make(map[string]bool)
	texts := make([]string, len(facts))
	for i, fact := range facts {
		if err := fact.Validate(); err != nil {
			return nil, err
		}
		texts[i] = fact.Text
		for _, skill := range fact.Skills {
			if normalized := cvbot.NormalizeSkill(skill); normalized != "" && !seen[normalized] {
				seen[normalized] = true
				e.skills = append(e.skills, normalized)
			}
		}
	}
	sort.Strings(e.skills)

	embeddings, err := e.embedAll(ctx, texts)
	if err != nil {
		return nil, err
	}
	e.embeddings = embeddings

	return e, nil
}

// embedAll embeds the corpus texts in batches with bounded concurrency.
// Results stay index-aligned with the input.
func (e *Engine) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for offset := 0; offset < len(texts); offset += embedBatchSize {
		start := offset
		end := min(start+embedBatchSize, len(texts))
		g.Go(func() error {
			batch, err := e.embedder.EmbedBatch(ctx, texts[start:end])
			if err != nil {
				return err
			}
			if len(batch) != end-start {
				return cvbot.Errorf(cvbot.EPROVIDER, "corpus embedding count mismatch: got %d, want %d", len(batch), end-start)
			}
			copy(embeddings[start:end], batch)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return embeddings, nil
}

// KnownSkills returns the engine's distinct normalized skill vocabulary
// in sorted order.
func (e *Engine) KnownSkills() []string {
	skills := make([]string, len(e.skills))
	copy(skills, e.skills)
	return skills
}

// Search narrows the corpus by the intent filter, then ranks the
// candidates by cosine similarity to the query. An empty candidate set
// returns immediately without an embedding call. Ties in score are
// broken by corpus order.
func (e *Engine) Search(ctx context.Context, query, intent string, topK int) ([]cvbot.SearchResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	candidates := e.filter(query, intent)
	if len(candidates) == 0 {
		return nil, nil
	}

	queryEmbedding, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	matrix := make([][]float32, len(candidates))
	for i, idx := range candidates {
		matrix[i] = e.embeddings[idx]
	}

	results := make([]cvbot.SearchResult, 0, topK)
	for _, match := range cvbot.TopSimilar(queryEmbedding, matrix, topK) {
		// Map back to the original corpus index so provenance survives
		// the filtering step.
		fact := e.facts[candidates[match.Index]]
		results = append(results, cvbot.SearchResult{
			Score:   match.Score,
			Context: fact.Context,
			Text:    fact.Text,
			Skills:  append([]string(nil), fact.Skills...),
		})
	}
	return results, nil
}

// filter returns the candidate corpus indices for the intent.
func (e *Engine) filter(query, intent string) []int {
	switch intent {
	case cvbot.IntentSkills:
		detected := e.matcher.DetectSkills(query, e.skills)
		if len(detected) == 0 {
			// No skill mentioned: fall back to pure semantic search.
			return e.allIndices()
		}
		var candidates []int
		for i, fact := range e.facts {
			if fact.HasAnySkill(detected) {
				candidates = append(candidates, i)
			}
		}
		return candidates
	case cvbot.IntentExperience, cvbot.IntentEducation, cvbot.IntentProject:
		var candidates []int
		for i, fact := range e.facts {
			if fact.Category == intent {
				candidates = append(candidates, i)
			}
		}
		return candidates
	case cvbot.IntentContact:
		// Contact data is not embedded; no fact is ever relevant.
		return nil
	default:
		return e.allIndices()
	}
}

func (e *Engine) allIndices() []int {
	indices := make([]int, len(e.facts))
	for i := range indices {
		indices[i] = i
	}
	return indices
}
