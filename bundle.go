package cvbot

// QueryStatus is the outcome class of a handled query.
type QueryStatus string

// Query statuses. Provider failures are reported through the error
// return of HandleQuery, not as a status.
const (
	StatusBlocked QueryStatus = "blocked"
	StatusNoData  QueryStatus = "no_data"
	StatusSuccess QueryStatus = "success"
)

// ContextBundle is the structured context assembled for the language
// model: the resolved intent, the quantitative fact lines, and the
// ranked evidence snippets with provenance.
type ContextBundle struct {
	Intent   string         `json:"intent"`
	Facts    []string       `json:"facts"`
	Snippets []SearchResult `json:"snippets"`
}

// QueryResult is the orchestrator's answer to one query. Response
// carries the fixed user-facing message for blocked/no_data statuses;
// Bundle and SystemPrompt are populated only on success.
type QueryResult struct {
	Status       QueryStatus    `json:"status"`
	Response     string         `json:"response,omitempty"`
	Bundle       *ContextBundle `json:"bundle,omitempty"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Query        string         `json:"user_query"`
}
