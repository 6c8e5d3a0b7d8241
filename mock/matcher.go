package mock

import "github.com/tienn/cvbot"

var _ cvbot.SkillMatcher = (*SkillMatcher)(nil)

// SkillMatcher is a mock implementation of cvbot.SkillMatcher.
type SkillMatcher struct {
	DetectSkillsFn func(query string, known []string) []string
}

func (m *SkillMatcher) DetectSkills(query string, known []string) []string {
	return m.DetectSkillsFn(query, known)
}
