package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tienn/cvbot"
)

// Ensure LoggingRetriever implements cvbot.Retriever.
var _ cvbot.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with structured logging of each
// search.
type LoggingRetriever struct {
	next   cvbot.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next cvbot.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Search delegates to the wrapped retriever and logs the outcome.
func (r *LoggingRetriever) Search(ctx context.Context, query, intent string, topK int) ([]cvbot.SearchResult, error) {
	begin := time.Now()
	results, err := r.next.Search(ctx, query, intent, topK)
	if err != nil {
		r.logger.Error("search failed",
			"intent", intent,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	r.logger.Info("search",
		"intent", intent,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
