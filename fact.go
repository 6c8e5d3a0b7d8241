package cvbot

// Fact categories. The set is extensible; these are the categories the
// converter emits today.
const (
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategoryProject    = "project"
)

// AtomicFact is one self-contained, independently retrievable unit of
// CV knowledge: a single bullet point plus its provenance. Facts are
// immutable after corpus load; the corpus is a fixed ordered sequence
// because embeddings are parallel-indexed to it.
//
// JSON tags match the atomic database files produced by the converter.
type AtomicFact struct {
	ID           string   `json:"id"`
	Category     string   `json:"type"`
	Role         string   `json:"role"`
	Organization string   `json:"name"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"` // "Present"/"current"/"now" resolve to today at parse time
	Text         string   `json:"text"`
	Skills       []string `json:"skills"` // normalized (lower-cased, trimmed) tokens
	Context      string   `json:"context_str"`
}

// Validate returns an error if the fact contains invalid fields.
// Malformed records are rejected eagerly at load time rather than
// failing on later field access.
func (f *AtomicFact) Validate() error {
	if f.ID == "" {
		return Errorf(EINVALID, "fact ID required")
	}
	if f.Category == "" {
		return Errorf(EINVALID, "fact %s: category required", f.ID)
	}
	if f.StartDate == "" {
		return Errorf(EINVALID, "fact %s: start date required", f.ID)
	}
	if f.Text == "" {
		return Errorf(EINVALID, "fact %s: text required", f.ID)
	}
	return nil
}

// HasAnySkill reports whether the fact's skill set intersects the given
// normalized skill tokens.
func (f *AtomicFact) HasAnySkill(skills []string) bool {
	for _, want := range skills {
		for _, have := range f.Skills {
			if have == want {
				return true
			}
		}
	}
	return false
}
