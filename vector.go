package cvbot

import (
	"math"
	"sort"
)

// Cosine returns the cosine similarity of two equal-length vectors in
// the range [-1, 1]. Mismatched lengths or zero vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Match pairs a matrix row index with its similarity score.
type Match struct {
	Index int
	Score float64
}

// TopSimilar ranks matrix rows by cosine similarity to the query and
// returns the k best matches, highest score first. Ties are broken by
// row order (stable sort), so callers that pass rows in corpus order
// get deterministic results.
func TopSimilar(query []float32, matrix [][]float32, k int) []Match {
	if k <= 0 || len(matrix) == 0 {
		return nil
	}
	matches := make([]Match, len(matrix))
	for i, row := range matrix {
		matches[i] = Match{Index: i, Score: Cosine(query, row)}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k]
}
