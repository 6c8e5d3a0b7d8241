package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// Run executes the chat command: an interactive question/answer loop
// over the same pipeline the ask command uses.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Ask about the candidate's skills, experience, or background. Type 'exit' to quit.")

	for {
		prompt := promptui.Prompt{Label: "question"}
		question, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		question = strings.TrimSpace(question)
		switch question {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := answer(deps, question); err != nil {
			// Per-query failures are reported but don't end the session.
			continue
		}
	}
}
