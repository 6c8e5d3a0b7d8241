package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienn/cvbot"
	"github.com/tienn/cvbot/mock"
	"github.com/tienn/cvbot/search"
)

// vectors maps every corpus text and query to a fixed embedding so
// similarity rankings in tests are exact.
var vectors = map[string][]float32{
	"Built streaming pipelines.":     {1, 0},
	"Wrote backend services in Go.":  {0, 1},
	"Thesis on distributed systems.": {0.7, 0.7},
	"python question":                {1, 0},
	"go question":                    {0, 1},
}

func corpus() []*cvbot.AtomicFact {
	return []*cvbot.AtomicFact{
		{
			ID:        "exp_acm_000001",
			Category:  cvbot.CategoryExperience,
			StartDate: "2020-01",
			EndDate:   "2021-06",
			Text:      "Built streaming pipelines.",
			Skills:    []string{"python", "kafka"},
			Context:   "During my time as data engineer at Acme (2020-01 to 2021-06)",
		},
		{
			ID:        "exp_goo_000001",
			Category:  cvbot.CategoryExperience,
			StartDate: "2021-07",
			EndDate:   "Present",
			Text:      "Wrote backend services in Go.",
			Skills:    []string{"go"},
			Context:   "During my time as engineer at Google (2021-07 to Present)",
		},
		{
			ID:        "edu_mit_000001",
			Category:  cvbot.CategoryEducation,
			StartDate: "2016-09",
			EndDate:   "2018-06",
			Text:      "Thesis on distributed systems.",
			Skills:    []string{"python"},
			Context:   "During my master's studies at MIT (2016-09 to 2018-06)",
		},
	}
}

// testEmbedder serves the fixture vectors and counts single-text embed
// calls so tests can assert the empty-filter short circuit.
type testEmbedder struct {
	embedCalls int
}

func (e *testEmbedder) mock() *mock.Embedder {
	return &mock.Embedder{
		EmbedFn: func(_ context.Context, text string) ([]float32, error) {
			e.embedCalls++
			return vectors[text], nil
		},
		EmbedBatchFn: func(_ context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i, text := range texts {
				out[i] = vectors[text]
			}
			return out, nil
		},
	}
}

func TestEngine_Search_SkillFilter(t *testing.T) {
	t.Parallel()

	engine, err := search.New(context.Background(), (&testEmbedder{}).mock(), corpus())
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), "python question", cvbot.IntentSkills, 3)
	require.NoError(t, err)

	// Only the two python facts are candidates; the pure-Go fact is
	// filtered out regardless of similarity.
	require.Len(t, results, 2)
	assert.Equal(t, "Built streaming pipelines.", results[0].Text)
	assert.Equal(t, "Thesis on distributed systems.", results[1].Text)
}

func TestEngine_Search_NoSkillDetectedFallsBackToFullCorpus(t *testing.T) {
	t.Parallel()

	matcher := &mock.SkillMatcher{
		DetectSkillsFn: func(query string, known []string) []string { return nil },
	}
	engine, err := search.New(context.Background(), (&testEmbedder{}).mock(), corpus(), search.WithMatcher(matcher))
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), "go question", cvbot.IntentSkills, 3)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "Wrote backend services in Go.", results[0].Text)
}

func TestEngine_Search_CategoryFilter(t *testing.T) {
	t.Parallel()

	engine, err := search.New(context.Background(), (&testEmbedder{}).mock(), corpus())
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), "python question", cvbot.IntentEducation, 3)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Thesis on distributed systems.", results[0].Text)
}

func TestEngine_Search_ContactSkipsEmbedding(t *testing.T) {
	t.Parallel()

	embedder := &testEmbedder{}
	engine, err := search.New(context.Background(), embedder.mock(), corpus())
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), "python question", cvbot.IntentContact, 3)
	require.NoError(t, err)

	assert.Nil(t, results)
	assert.Zero(t, embedder.embedCalls)
}

func TestEngine_Search_TopK(t *testing.T) {
	t.Parallel()

	engine, err := search.New(context.Background(), (&testEmbedder{}).mock(), corpus())
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), "python question", cvbot.IntentExperience, 1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Built streaming pipelines.", results[0].Text)
}

func TestEngine_Search_NonPositiveTopKUsesDefault(t *testing.T) {
	t.Parallel()

	engine, err := search.New(context.Background(), (&testEmbedder{}).mock(), corpus())
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), "python question", "", 0)
	require.NoError(t, err)

	assert.Len(t, results, search.DefaultTopK)
}

func TestEngine_Search_EmbedError(t *testing.T) {
	t.Parallel()

	failing := &mock.Embedder{
		EmbedFn: func(_ context.Context, _ string) ([]float32, error) {
			return nil, cvbot.Errorf(cvbot.EPROVIDER, "embedding service unavailable")
		},
		EmbedBatchFn: func(_ context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i, text := range texts {
				out[i] = vectors[text]
			}
			return out, nil
		},
	}
	engine, err := search.New(context.Background(), failing, corpus())
	require.NoError(t, err)

	_, err = engine.Search(context.Background(), "python question", cvbot.IntentExperience, 3)

	require.Error(t, err)
	assert.Equal(t, cvbot.EPROVIDER, cvbot.ErrorCode(err))
}

func TestEngine_KnownSkills(t *testing.T) {
	t.Parallel()

	engine, err := search.New(context.Background(), (&testEmbedder{}).mock(), corpus())
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "kafka", "python"}, engine.KnownSkills())
}

func TestNew_EmptyCorpus(t *testing.T) {
	t.Parallel()

	_, err := search.New(context.Background(), (&testEmbedder{}).mock(), nil)

	require.Error(t, err)
	assert.Equal(t, cvbot.ECONFIG, cvbot.ErrorCode(err))
}

func TestNew_InvalidFact(t *testing.T) {
	t.Parallel()

	facts := corpus()
	facts[0].StartDate = ""

	_, err := search.New(context.Background(), (&testEmbedder{}).mock(), facts)

	require.Error(t, err)
	assert.Equal(t, cvbot.EINVALID, cvbot.ErrorCode(err))
}
