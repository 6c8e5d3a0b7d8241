// Package convert flattens raw hierarchical CV JSON into the atomic
// fact corpus the retrieval core consumes. Each bullet point becomes
// one fact carrying its parent block's provenance, so a single
// retrieved chunk still tells the language model where and when.
package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/tienn/cvbot"
)

// Profile is the raw hierarchical CV structure produced by resume
// tooling. Education is nested under the profile block; experience and
// projects are top-level lists.
type Profile struct {
	Experience []Block `json:"experience"`
	Profile    struct {
		Education []Block `json:"education"`
	} `json:"profile"`
	Projects []Block `json:"projects"`
}

// Block is one experience, education or project entry. Field usage
// depends on the category: experience uses company/title, education
// uses school/level/field, projects use name/role.
type Block struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	School   string `json:"school"`
	Level    string `json:"level"`
	Field    string `json:"field"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
	From     string `json:"from"`
	To       string `json:"to"`
	Items    []Item `json:"items"`
}

// Item is one bullet point within a block.
type Item struct {
	Details string   `json:"details"`
	Skills  []string `json:"skills"`
}

// ParseProfile decodes a raw CV JSON document.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, cvbot.Errorf(cvbot.EINVALID, "CV profile is not valid JSON: %v", err)
	}
	return &p, nil
}

// Atomic flattens the profile into an ordered fact corpus. Identical
// bullets within the same block category and organization are emitted
// once (content-hash dedup); skills are normalized; a block with no
// bullet items yields a single generic fact so the block still
// retrieves.
func Atomic(p *Profile) []*cvbot.AtomicFact {
	c := converter{seen: make(map[uint64]bool)}
	for _, block := range p.Experience {
		c.processBlock(block, cvbot.CategoryExperience)
	}
	for _, block := range p.Profile.Education {
		c.processBlock(block, cvbot.CategoryEducation)
	}
	for _, block := range p.Projects {
		c.processBlock(block, cvbot.CategoryProject)
	}
	return c.facts
}

type converter struct {
	facts []*cvbot.AtomicFact
	seen  map[uint64]bool
}

func (c *converter) processBlock(block Block, category string) {
	name, role := resolveNameRole(block, category)

	start := block.From
	end := block.To
	if end == "" {
		end = "Present"
	}

	items := block.Items
	if len(items) == 0 {
		// Blocks without bullet points (e.g. a bare degree listing)
		// still get one generic fact.
		items = []Item{{Details: fmt.Sprintf("Completed %s at %s.", role, name)}}
	}

	for _, item := range items {
		hash := xxhash.Sum64String(category + "\x00" + name + "\x00" + item.Details)
		if c.seen[hash] {
			continue
		}
		c.seen[hash] = true

		skills := make([]string, 0, len(item.Skills))
		for _, skill := range item.Skills {
			if normalized := cvbot.NormalizeSkill(skill); normalized != "" {
				skills = append(skills, normalized)
			}
		}

		c.facts = append(c.facts, &cvbot.AtomicFact{
			ID:           chunkID(category, name),
			Category:     category,
			Role:         role,
			Organization: name,
			Location:     block.Location,
			StartDate:    start,
			EndDate:      end,
			Text:         item.Details,
			Skills:       skills,
			Context:      contextString(category, role, name, start, end),
		})
	}
}

// resolveNameRole maps the category-specific block fields onto the
// common organization/role pair.
func resolveNameRole(block Block, category string) (name, role string) {
	switch category {
	case cvbot.CategoryEducation:
		name = block.School
		if name == "" {
			name = "Unknown School"
		}
		role = strings.TrimSpace(block.Level + " in " + block.Field)
	case cvbot.CategoryProject:
		name = block.Name
		if name == "" {
			name = "Unknown Project"
		}
		role = block.Role
		if role == "" {
			role = "Contributor"
		}
	default:
		name = block.Company
		if name == "" {
			name = "Unknown Company"
		}
		role = block.Title
		if role == "" {
			role = "Unknown Role"
		}
	}
	return name, role
}

// contextString builds the human-readable provenance sentence injected
// into model context alongside each retrieved chunk.
func contextString(category, role, name, start, end string) string {
	switch category {
	case cvbot.CategoryProject:
		return fmt.Sprintf("In project %q, as the %s (%s to %s)", name, strings.ToLower(role), start, end)
	case cvbot.CategoryEducation:
		return fmt.Sprintf("During my %s studies at %s (%s to %s)", strings.ToLower(role), name, start, end)
	default:
		return fmt.Sprintf("During my time as %s at %s (%s to %s)", strings.ToLower(role), name, start, end)
	}
}

// chunkID builds ids like "exp_goo_3f9a21": category prefix, org
// prefix, random suffix.
func chunkID(category, name string) string {
	catPrefix := category
	if len(catPrefix) > 3 {
		catPrefix = catPrefix[:3]
	}
	orgPrefix := strings.ReplaceAll(strings.ToLower(name), " ", "")
	if len(orgPrefix) > 3 {
		orgPrefix = orgPrefix[:3]
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s_%s_%s", catPrefix, orgPrefix, suffix)
}
