package main

import (
	"fmt"

	"github.com/tienn/cvbot"
)

// Run executes the route command.
func (c *RouteCmd) Run(deps *Dependencies) error {
	decision, err := deps.Router.Route(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvbot.ErrorMessage(err))
		return err
	}

	if !decision.Allowed {
		fmt.Fprintf(deps.Stdout, "blocked (%s) score=%.4f\n", decision.Reason, decision.Score)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "intent=%s score=%.4f\n", decision.Intent, decision.Score)
	return nil
}
