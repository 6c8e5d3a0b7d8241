package cvbot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienn/cvbot"
)

func validFact() *cvbot.AtomicFact {
	return &cvbot.AtomicFact{
		ID:           "exp_acm_000001",
		Category:     cvbot.CategoryExperience,
		Role:         "Data Engineer",
		Organization: "Acme",
		StartDate:    "2020-01",
		EndDate:      "2021-06",
		Text:         "Built streaming pipelines.",
		Skills:       []string{"python", "kafka"},
		Context:      "During my time as data engineer at Acme (2020-01 to 2021-06)",
	}
}

func TestAtomicFact_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validFact().Validate())
}

func TestAtomicFact_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*cvbot.AtomicFact)
	}{
		{"missing ID", func(f *cvbot.AtomicFact) { f.ID = "" }},
		{"missing category", func(f *cvbot.AtomicFact) { f.Category = "" }},
		{"missing start date", func(f *cvbot.AtomicFact) { f.StartDate = "" }},
		{"missing text", func(f *cvbot.AtomicFact) { f.Text = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fact := validFact()
			tt.mutate(fact)

			err := fact.Validate()

			require.Error(t, err)
			assert.Equal(t, cvbot.EINVALID, cvbot.ErrorCode(err))
		})
	}
}

func TestAtomicFact_HasAnySkill(t *testing.T) {
	t.Parallel()

	fact := validFact()

	assert.True(t, fact.HasAnySkill([]string{"kafka"}))
	assert.True(t, fact.HasAnySkill([]string{"go", "python"}))
	assert.False(t, fact.HasAnySkill([]string{"go"}))
	assert.False(t, fact.HasAnySkill(nil))
}
