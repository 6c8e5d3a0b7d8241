package main

import (
	"fmt"

	"github.com/tienn/cvbot"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	return answer(deps, c.Question)
}

// answer runs one query through the orchestrator and, on success,
// through the language model. Blocked and no-data outcomes print their
// fixed responses directly without an LLM call.
func answer(deps *Dependencies, question string) error {
	result, err := deps.Orchestrator.HandleQuery(deps.Ctx, question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvbot.ErrorMessage(err))
		return err
	}

	if result.Status != cvbot.StatusSuccess {
		fmt.Fprintln(deps.Stdout, result.Response)
		return nil
	}

	reply, err := deps.Asker.Ask(deps.Ctx, result.SystemPrompt, result.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cvbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
