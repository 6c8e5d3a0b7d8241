package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tienn/cvbot/convert"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}

	profile, err := convert.ParseProfile(data)
	if err != nil {
		return err
	}

	facts := convert.Atomic(profile)
	if len(facts) == 0 {
		return fmt.Errorf("no atomic facts produced from %q", c.Input)
	}

	out, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, out, 0644); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d atomic facts to %s\n", len(facts), c.Output)
	return nil
}
