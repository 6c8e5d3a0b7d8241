package cvbot

import "context"

// Intent labels used by the router and retrieval filtering. The three
// category intents share their values with the fact categories so the
// retrieval filter is a direct equality check.
const (
	IntentSkills     = "skills"
	IntentExperience = CategoryExperience
	IntentEducation  = CategoryEducation
	IntentProject    = CategoryProject
	IntentContact    = "contact"
)

// ReasonOutOfScope is the denial reason for queries that match no
// intent closely enough.
const ReasonOutOfScope = "out_of_scope"

// RouteDecision is the outcome of classifying a query. A denial is a
// normal, successful classification outcome, not an error: the score is
// retained either way for observability.
type RouteDecision struct {
	Allowed bool    `json:"allowed"`
	Intent  string  `json:"intent,omitempty"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason,omitempty"`
}

// Router classifies a free-text query into one of a fixed set of
// intents, or rejects it as out of scope.
type Router interface {
	Route(ctx context.Context, query string) (*RouteDecision, error)
}
