// Package aggregate derives quantitative fact tables from the atomic
// fact corpus: per-skill cumulative months of experience and an
// overlap-safe total experience duration. All tables are built once at
// construction and are read-only afterwards, so an Aggregator is safe
// to share across concurrent query handlers.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/tienn/cvbot"
)

// DefaultMaxExamples bounds the illustrative examples kept per skill.
const DefaultMaxExamples = 3

// exampleDateLayout renders parsed dates back into example records.
const exampleDateLayout = "2006-01"

// Ensure Aggregator implements cvbot.Aggregator at compile time.
var _ cvbot.Aggregator = (*Aggregator)(nil)

// Aggregator holds the derived skill-duration table and the experience
// intervals used for the total-experience calculation.
type Aggregator struct {
	maxExamples int
	skills      map[string]*cvbot.SkillExperience
	known       []string // sorted distinct skill vocabulary
	experience  []interval
}

type interval struct {
	start time.Time
	end   time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithMaxExamples sets the per-skill example cap.
// Defaults to DefaultMaxExamples if not specified.
func WithMaxExamples(n int) Option {
	return func(a *Aggregator) {
		a.maxExamples = n
	}
}

// New builds the derived tables from the fact corpus. Every fact's
// dates are parsed eagerly against now; a malformed record fails the
// whole construction rather than being silently skipped. A corpus that
// violates start <= end after normalization is rejected.
func New(facts []*cvbot.AtomicFact, now time.Time, opts ...Option) (*Aggregator, error) {
	if len(facts) == 0 {
		return nil, cvbot.Errorf(cvbot.ECONFIG, "fact corpus is empty")
	}

	a := &Aggregator{
		maxExamples: DefaultMaxExamples,
		skills:      make(map[string]*cvbot.SkillExperience),
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, fact := range facts {
		if err := fact.Validate(); err != nil {
			return nil, err
		}

		start, err := cvbot.ParseDate(fact.StartDate, now)
		if err != nil {
			return nil, cvbot.Errorf(cvbot.ErrorCode(err), "fact %s: %s", fact.ID, cvbot.ErrorMessage(err))
		}
		end, err := cvbot.ParseDate(fact.EndDate, now)
		if err != nil {
			return nil, cvbot.Errorf(cvbot.ErrorCode(err), "fact %s: %s", fact.ID, cvbot.ErrorMessage(err))
		}
		if end.Before(start) {
			return nil, cvbot.Errorf(cvbot.EINVALID, "fact %s: end date %q precedes start date %q", fact.ID, fact.EndDate, fact.StartDate)
		}

		a.accumulate(fact, start, end)

		if fact.Category == cvbot.CategoryExperience {
			a.experience = append(a.experience, interval{start: start, end: end})
		}
	}

	a.known = make([]string, 0, len(a.skills))
	for skill := range a.skills {
		a.known = append(a.known, skill)
	}
	sort.Strings(a.known)

	return a, nil
}

// accumulate adds one fact's duration to every skill it lists.
func (a *Aggregator) accumulate(fact *cvbot.AtomicFact, start, end time.Time) {
	duration := cvbot.MonthsBetween(start, end)
	for _, raw := range fact.Skills {
		skill := cvbot.NormalizeSkill(raw)
		if skill == "" {
			continue
		}
		entry, ok := a.skills[skill]
		if !ok {
			entry = &cvbot.SkillExperience{}
			a.skills[skill] = entry
		}
		entry.TotalMonths += duration
		if len(entry.Examples) < a.maxExamples {
			entry.Examples = append(entry.Examples, cvbot.SkillExample{
				Organization: fact.Organization,
				Role:         fact.Role,
				Location:     fact.Location,
				Start:        start.Format(exampleDateLayout),
				End:          end.Format(exampleDateLayout),
				Text:         fact.Text,
			})
		}
	}
}

// SkillSummary returns the experience record for a skill token,
// normalizing the key first.
func (a *Aggregator) SkillSummary(skill string) (*cvbot.SkillExperience, bool) {
	entry, ok := a.skills[cvbot.NormalizeSkill(skill)]
	return entry, ok
}

// KnownSkills returns the distinct normalized skill vocabulary in
// sorted order.
func (a *Aggregator) KnownSkills() []string {
	known := make([]string, len(a.known))
	copy(known, a.known)
	return known
}

// TotalExperienceYears returns the total professional experience in
// years, rounded to 2 decimal places. Experience intervals are sorted
// by start date and merged before summing, so concurrent roles are
// never double-counted.
func (a *Aggregator) TotalExperienceYears() float64 {
	intervals := make([]interval, len(a.experience))
	copy(intervals, a.experience)
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].start.Before(intervals[j].start)
	})

	var merged []interval
	for _, iv := range intervals {
		if len(merged) == 0 || iv.start.After(merged[len(merged)-1].end) {
			merged = append(merged, iv)
			continue
		}
		last := &merged[len(merged)-1]
		if iv.end.After(last.end) {
			last.end = iv.end
		}
	}

	months := 0
	for _, iv := range merged {
		months += cvbot.MonthsBetween(iv.start, iv.end)
	}
	return math.Round(float64(months)/12.0*100) / 100
}
