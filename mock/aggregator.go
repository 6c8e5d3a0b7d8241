package mock

import "github.com/tienn/cvbot"

var _ cvbot.Aggregator = (*Aggregator)(nil)

// Aggregator is a mock implementation of cvbot.Aggregator.
type Aggregator struct {
	SkillSummaryFn         func(skill string) (*cvbot.SkillExperience, bool)
	KnownSkillsFn          func() []string
	TotalExperienceYearsFn func() float64
}

func (a *Aggregator) SkillSummary(skill string) (*cvbot.SkillExperience, bool) {
	return a.SkillSummaryFn(skill)
}

func (a *Aggregator) KnownSkills() []string {
	return a.KnownSkillsFn()
}

func (a *Aggregator) TotalExperienceYears() float64 {
	return a.TotalExperienceYearsFn()
}
