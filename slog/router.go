// Package slog provides logging decorators for the core query
// components, following the wrap-and-delegate pattern so logging never
// leaks into the domain implementations.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tienn/cvbot"
)

// Ensure LoggingRouter implements cvbot.Router.
var _ cvbot.Router = (*LoggingRouter)(nil)

// LoggingRouter wraps a Router with structured logging of each routing
// decision.
type LoggingRouter struct {
	next   cvbot.Router
	logger *slog.Logger
}

// NewLoggingRouter creates a new LoggingRouter.
func NewLoggingRouter(next cvbot.Router, logger *slog.Logger) *LoggingRouter {
	return &LoggingRouter{next: next, logger: logger}
}

// Route delegates to the wrapped router and logs the decision.
func (r *LoggingRouter) Route(ctx context.Context, query string) (*cvbot.RouteDecision, error) {
	begin := time.Now()
	decision, err := r.next.Route(ctx, query)
	if err != nil {
		r.logger.Error("route failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	intent := decision.Intent
	if !decision.Allowed {
		intent = "(blocked)"
	}
	r.logger.Info("route decision",
		"intent", intent,
		"allowed", decision.Allowed,
		"score", decision.Score,
		"duration", time.Since(begin),
	)
	return decision, nil
}
