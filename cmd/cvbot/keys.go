package main

import (
	"fmt"
	"os"

	"github.com/tienn/cvbot/secrets"
)

// Run executes the keygen command.
func (c *KeygenCmd) Run(deps *Dependencies) error {
	key, err := secrets.GenerateKey()
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stderr, "Save this key; data sealed with it cannot be recovered without it.")
	fmt.Fprintln(deps.Stdout, key)
	return nil
}

// Run executes the encrypt command.
func (c *EncryptCmd) Run(deps *Dependencies) error {
	if deps.Vault == nil {
		return fmt.Errorf("no encryption key configured. Set CVBOT_KEY or pass --key")
	}
	if err := deps.Vault.SealFile(c.Input, c.Output); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Sealed %s to %s\n", c.Input, c.Output)
	return nil
}

// Run executes the decrypt command.
func (c *DecryptCmd) Run(deps *Dependencies) error {
	if deps.Vault == nil {
		return fmt.Errorf("no encryption key configured. Set CVBOT_KEY or pass --key")
	}
	plaintext, err := deps.Vault.OpenFile(c.Input)
	if err != nil {
		return err
	}
	if c.Output == "" {
		_, err = deps.Stdout.Write(plaintext)
		return err
	}
	if err := os.WriteFile(c.Output, plaintext, 0600); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Opened %s to %s\n", c.Input, c.Output)
	return nil
}
