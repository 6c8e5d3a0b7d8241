package main

import (
	"context"
	"io"

	"github.com/tienn/cvbot"
	"github.com/tienn/cvbot/chat"
	"github.com/tienn/cvbot/secrets"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Router       cvbot.Router
	Orchestrator *chat.Orchestrator
	Asker        cvbot.Asker
	Vault        *secrets.Vault
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataDir   string  `help:"Directory containing the CV data files" env:"CVBOT_DATA" default:"data"`
	Key       string  `help:"Base64 key for sealed data files" env:"CVBOT_KEY"`
	Verbose   bool    `short:"v" help:"Log routing and retrieval decisions to stderr"`
	Threshold float64 `help:"Guardrail similarity threshold" default:"0.35"`
	TopK      int     `name:"top-k" help:"Number of snippets to retrieve per query" default:"3"`
	Model     string  `help:"Gemini generation model" default:"gemini-2.5-flash"`

	Ask     AskCmd     `cmd:"" help:"Ask a single question about the candidate profile"`
	Chat    ChatCmd    `cmd:"" help:"Interactive question/answer session"`
	Route   RouteCmd   `cmd:"" help:"Show the guardrail decision for a query"`
	Convert ConvertCmd `cmd:"" help:"Convert raw CV JSON into an atomic fact corpus"`
	Keygen  KeygenCmd  `cmd:"" help:"Generate a new data encryption key"`
	Encrypt EncryptCmd `cmd:"" help:"Seal a data file for at-rest storage"`
	Decrypt DecryptCmd `cmd:"" help:"Open a sealed data file"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question about the candidate profile"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// RouteCmd is the "route" subcommand.
type RouteCmd struct {
	Query string `arg:"" help:"Query to classify"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input  string `arg:"" help:"Raw hierarchical CV JSON file"`
	Output string `short:"o" default:"cv_atomic_db.json" help:"Atomic fact corpus output file"`
}

// KeygenCmd is the "keygen" subcommand.
type KeygenCmd struct{}

// EncryptCmd is the "encrypt" subcommand.
type EncryptCmd struct {
	Input  string `arg:"" help:"Plaintext JSON file"`
	Output string `arg:"" help:"Sealed output file"`
}

// DecryptCmd is the "decrypt" subcommand.
type DecryptCmd struct {
	Input  string `arg:"" help:"Sealed input file"`
	Output string `arg:"" optional:"" help:"Plaintext output file (stdout if omitted)"`
}
