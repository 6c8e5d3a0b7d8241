// Package cvbot answers natural-language questions about a single
// candidate's professional profile. A semantic guardrail routes each
// query to an intent (or rejects it as off-topic), a hybrid retrieval
// engine ranks intent-filtered CV facts by embedding similarity, and a
// fact aggregator derives quantitative skill and experience durations.
// The assembled context bundle is handed to an external language model.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., gemini/)
// or their function (e.g., route/, search/, aggregate/, chat/).
package cvbot
