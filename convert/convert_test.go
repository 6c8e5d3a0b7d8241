package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienn/cvbot"
	"github.com/tienn/cvbot/convert"
)

const rawProfile = `{
	"experience": [
		{
			"company": "Acme",
			"title": "Data Engineer",
			"location": "Warsaw",
			"from": "2020-01",
			"to": "2021-06",
			"items": [
				{"details": "Built streaming pipelines.", "skills": ["Python", "Kafka"]},
				{"details": "Built streaming pipelines.", "skills": ["Python"]},
				{"details": "Migrated batch jobs to Airflow.", "skills": [" Airflow "]}
			]
		},
		{
			"company": "Google",
			"title": "Engineer",
			"from": "2021-07",
			"items": [
				{"details": "Wrote backend services in Go.", "skills": ["Go"]}
			]
		}
	],
	"profile": {
		"education": [
			{
				"school": "MIT",
				"level": "Master",
				"field": "Computer Science",
				"from": "2016-09",
				"to": "2018-06"
			}
		]
	},
	"projects": [
		{
			"name": "cvbot",
			"from": "2023-01",
			"to": "2023-06",
			"items": [
				{"details": "Shipped a CV question answering bot.", "skills": ["go"]}
			]
		}
	]
}`

func TestParseProfile_Invalid(t *testing.T) {
	t.Parallel()

	_, err := convert.ParseProfile([]byte("{not json"))

	require.Error(t, err)
	assert.Equal(t, cvbot.EINVALID, cvbot.ErrorCode(err))
}

func TestAtomic(t *testing.T) {
	t.Parallel()

	profile, err := convert.ParseProfile([]byte(rawProfile))
	require.NoError(t, err)

	facts := convert.Atomic(profile)

	// 3 experience items minus 1 duplicate, 1 generic education fact,
	// 1 project item.
	require.Len(t, facts, 5)

	for _, fact := range facts {
		require.NoError(t, fact.Validate())
	}

	first := facts[0]
	assert.Equal(t, cvbot.CategoryExperience, first.Category)
	assert.Equal(t, "Data Engineer", first.Role)
	assert.Equal(t, "Acme", first.Organization)
	assert.Equal(t, "Warsaw", first.Location)
	assert.Equal(t, "2020-01", first.StartDate)
	assert.Equal(t, "2021-06", first.EndDate)
	assert.Equal(t, "Built streaming pipelines.", first.Text)
	assert.Equal(t, []string{"python", "kafka"}, first.Skills)
	assert.Equal(t, "During my time as data engineer at Acme (2020-01 to 2021-06)", first.Context)
	assert.True(t, strings.HasPrefix(first.ID, "exp_acm_"), "id %q", first.ID)
}

func TestAtomic_OngoingRoleDefaultsToPresent(t *testing.T) {
	t.Parallel()

	profile, err := convert.ParseProfile([]byte(rawProfile))
	require.NoError(t, err)

	facts := convert.Atomic(profile)

	var google *cvbot.AtomicFact
	for _, fact := range facts {
		if fact.Organization == "Google" {
			google = fact
		}
	}
	require.NotNil(t, google)
	assert.Equal(t, "Present", google.EndDate)
}

func TestAtomic_EducationWithoutItemsGetsGenericFact(t *testing.T) {
	t.Parallel()

	profile, err := convert.ParseProfile([]byte(rawProfile))
	require.NoError(t, err)

	facts := convert.Atomic(profile)

	var edu *cvbot.AtomicFact
	for _, fact := range facts {
		if fact.Category == cvbot.CategoryEducation {
			edu = fact
		}
	}
	require.NotNil(t, edu)
	assert.Equal(t, "MIT", edu.Organization)
	assert.Equal(t, "Master in Computer Science", edu.Role)
	assert.Equal(t, "Completed Master in Computer Science at MIT.", edu.Text)
	assert.Equal(t, "During my master in computer science studies at MIT (2016-09 to 2018-06)", edu.Context)
	assert.True(t, strings.HasPrefix(edu.ID, "edu_mit_"), "id %q", edu.ID)
}

func TestAtomic_ProjectContext(t *testing.T) {
	t.Parallel()

	profile, err := convert.ParseProfile([]byte(rawProfile))
	require.NoError(t, err)

	facts := convert.Atomic(profile)

	var proj *cvbot.AtomicFact
	for _, fact := range facts {
		if fact.Category == cvbot.CategoryProject {
			proj = fact
		}
	}
	require.NotNil(t, proj)
	assert.Equal(t, "Contributor", proj.Role)
	assert.Equal(t, `In project "cvbot", as the contributor (2023-01 to 2023-06)`, proj.Context)
	assert.True(t, strings.HasPrefix(proj.ID, "pro_cvb_"), "id %q", proj.ID)
}

func TestAtomic_UniqueIDs(t *testing.T) {
	t.Parallel()

	profile, err := convert.ParseProfile([]byte(rawProfile))
	require.NoError(t, err)

	facts := convert.Atomic(profile)

	seen := make(map[string]bool)
	for _, fact := range facts {
		assert.False(t, seen[fact.ID], "duplicate id %q", fact.ID)
		seen[fact.ID] = true
	}
}
