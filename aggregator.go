package cvbot

// SkillExample is one illustrative source record for a skill's
// cumulative duration.
type SkillExample struct {
	Organization string `json:"name"`
	Role         string `json:"role"`
	Location     string `json:"location,omitempty"`
	Start        string `json:"start_date"` // formatted as 2006-01
	End          string `json:"end_date"`
	Text         string `json:"text"`
}

// SkillExperience is the derived duration record for one normalized
// skill token: total cumulative months plus a bounded list of examples
// in original record order. Rebuilt once at startup, read-only after.
type SkillExperience struct {
	TotalMonths int            `json:"total_months"`
	Examples    []SkillExample `json:"examples"`
}

// Aggregator exposes the quantitative fact tables derived from the
// corpus at startup.
type Aggregator interface {
	// SkillSummary returns the experience record for a skill token,
	// normalizing the key. The second return is false for unknown skills.
	SkillSummary(skill string) (*SkillExperience, bool)

	// KnownSkills returns the distinct normalized skill vocabulary of
	// the corpus in sorted order.
	KnownSkills() []string

	// TotalExperienceYears returns the overlap-safe total professional
	// experience in years, rounded to 2 decimal places.
	TotalExperienceYears() float64
}
