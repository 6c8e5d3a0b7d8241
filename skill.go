package cvbot

import "strings"

// NormalizeSkill canonicalizes a skill token for matching and lookup.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillMatcher detects which known skill tokens a free-text query
// mentions. It is a named strategy so the matching heuristic can be
// swapped (e.g., for token-boundary-aware matching) without touching
// the retrieval engine's control flow.
type SkillMatcher interface {
	// DetectSkills returns the known skills mentioned in the query, in
	// the order they appear in known. Both query and known are expected
	// in normalized form.
	DetectSkills(query string, known []string) []string
}

// SubstringMatcher detects skills by substring match on the lower-cased
// query. Inherently approximate: a skill token inside an unrelated word
// is a false positive, and multi-word skills get no boundary checking.
type SubstringMatcher struct{}

// Ensure SubstringMatcher implements SkillMatcher at compile time.
var _ SkillMatcher = (*SubstringMatcher)(nil)

// DetectSkills returns every known skill that occurs as a substring of
// the query.
func (SubstringMatcher) DetectSkills(query string, known []string) []string {
	q := strings.ToLower(query)
	var detected []string
	for _, skill := range known {
		if skill != "" && strings.Contains(q, skill) {
			detected = append(detected, skill)
		}
	}
	return detected
}
