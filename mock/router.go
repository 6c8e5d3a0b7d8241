package mock

import (
	"context"

	"github.com/tienn/cvbot"
)

var _ cvbot.Router = (*Router)(nil)

// Router is a mock implementation of cvbot.Router.
type Router struct {
	RouteFn func(ctx context.Context, query string) (*cvbot.RouteDecision, error)
}

func (r *Router) Route(ctx context.Context, query string) (*cvbot.RouteDecision, error) {
	return r.RouteFn(ctx, query)
}
