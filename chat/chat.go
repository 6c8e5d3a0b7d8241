// Package chat provides the query orchestration pipeline: guardrail
// routing, quantitative fact injection, retrieval, and context
// assembly. It is the only component with business-flow branching; the
// language-model call itself happens outside the core.
package chat

import (
	"context"
	"fmt"

	"github.com/tienn/cvbot"
)

// User-facing messages for non-success statuses.
const (
	BlockedMessage = "I can only answer questions about my professional profile, skills, and work experience."
	NoDataMessage  = "I couldn't find specific details about that in the CV, but I can tell you about my general background."
)

// DefaultTopK is the snippet count requested from the retriever when
// TopK is unset.
const DefaultTopK = 3

// Orchestrator sequences router, aggregator and retriever for one
// query at a time. All dependencies are constructor-injected and
// read-only, so a single Orchestrator is safe to share across
// concurrent query handlers.
type Orchestrator struct {
	Router     cvbot.Router
	Retriever  cvbot.Retriever
	Aggregator cvbot.Aggregator
	Contacts   cvbot.ContactInfo

	// Matcher detects skill mentions for the skills intent.
	// Defaults to cvbot.SubstringMatcher.
	Matcher cvbot.SkillMatcher

	// TopK bounds the retrieved snippets. Defaults to DefaultTopK.
	TopK int
}

// HandleQuery runs the full pipeline for one query. A blocked query
// returns StatusBlocked before any downstream computation, protecting
// against wasted cost and off-topic prompt injection. Provider failures
// surface through the error return; they are distinct from the three
// statuses and are never retried here.
func (o *Orchestrator) HandleQuery(ctx context.Context, query string) (*cvbot.QueryResult, error) {
	decision, err := o.Router.Route(ctx, query)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		return &cvbot.QueryResult{
			Status:   cvbot.StatusBlocked,
			Response: BlockedMessage,
			Query:    query,
		}, nil
	}

	facts := o.quantitativeFacts(decision.Intent, query)

	snippets, err := o.Retriever.Search(ctx, query, decision.Intent, o.topK())
	if err != nil {
		return nil, err
	}

	if len(facts) == 0 && len(snippets) == 0 {
		return &cvbot.QueryResult{
			Status:   cvbot.StatusNoData,
			Response: NoDataMessage,
			Query:    query,
		}, nil
	}

	bundle := &cvbot.ContextBundle{
		Intent:   decision.Intent,
		Facts:    facts,
		Snippets: snippets,
	}
	return &cvbot.QueryResult{
		Status:       cvbot.StatusSuccess,
		Bundle:       bundle,
		SystemPrompt: cvbot.BuildSystemPrompt(bundle),
		Query:        query,
	}, nil
}

// quantitativeFacts derives the immutable number lines for the resolved
// intent: per-skill durations for skills, the overlap-safe total for
// experience, contact details for contact, nothing otherwise.
func (o *Orchestrator) quantitativeFacts(intent, query string) []string {
	var facts []string
	switch intent {
	case cvbot.IntentSkills:
		detected := o.matcher().DetectSkills(query, o.Aggregator.KnownSkills())
		for _, skill := range detected {
			summary, ok := o.Aggregator.SkillSummary(skill)
			if !ok {
				continue
			}
			facts = append(facts, fmt.Sprintf("- Total experience with %s: %s years.", skill, cvbot.FormatYears(summary.TotalMonths)))
		}
	case cvbot.IntentExperience:
		facts = append(facts, fmt.Sprintf("- Total years of professional experience: %.2f years.", o.Aggregator.TotalExperienceYears()))
	case cvbot.IntentContact:
		facts = append(facts,
			fmt.Sprintf("- Email address: %s.", o.Contacts.Email),
			fmt.Sprintf("- Phone number: %s.", o.Contacts.Phone),
		)
	}
	return facts
}

func (o *Orchestrator) matcher() cvbot.SkillMatcher {
	if o.Matcher != nil {
		return o.Matcher
	}
	return cvbot.SubstringMatcher{}
}

func (o *Orchestrator) topK() int {
	if o.TopK > 0 {
		return o.TopK
	}
	return DefaultTopK
}
