package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/tienn/cvbot"
	"github.com/tienn/cvbot/aggregate"
	"github.com/tienn/cvbot/chat"
	"github.com/tienn/cvbot/fs"
	"github.com/tienn/cvbot/gemini"
	"github.com/tienn/cvbot/route"
	"github.com/tienn/cvbot/search"
	"github.com/tienn/cvbot/secrets"
	cvslog "github.com/tienn/cvbot/slog"
)

// Data file names inside the data directory. Sealed variants carry the
// .enc suffix.
const (
	factsFile    = "cv_atomic_db.json"
	anchorsFile  = "anchors.json"
	contactsFile = "contacts.json"
	sealedSuffix = ".enc"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cvbot"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cvbot --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Key != "" {
		deps.Vault, err = secrets.NewVault(cli.Key)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Run 'cvbot keygen' to generate a valid key")
			return err
		}
	}

	// Wire the query pipeline only for the commands that serve queries.
	switch cmd {
	case "ask", "chat", "route":
		if err := m.wirePipeline(ctx, cli, deps, cmd); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wirePipeline builds the embedding provider, the router and, for the
// query commands, the full orchestrator. All embedding happens here,
// once, before any query is served.
func (m *Main) wirePipeline(ctx context.Context, cli *CLI, deps *Dependencies, cmd string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	embedder := gemini.NewEmbedder(client)

	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	anchors, err := m.loadAnchors(cli, deps.Vault)
	if err != nil {
		return err
	}

	router, err := route.New(ctx, embedder, anchors, route.WithThreshold(cli.Threshold))
	if err != nil {
		return fmt.Errorf("failed to build guardrail router: %w", err)
	}
	deps.Router = router
	if cli.Verbose {
		deps.Router = cvslog.NewLoggingRouter(router, logger)
	}

	if cmd == "route" {
		return nil
	}

	facts, err := m.loadFacts(cli, deps.Vault)
	if err != nil {
		return err
	}
	contacts, err := m.loadContacts(cli, deps.Vault)
	if err != nil {
		return err
	}

	engine, err := search.New(ctx, embedder, facts)
	if err != nil {
		return fmt.Errorf("failed to build retrieval engine: %w", err)
	}
	var retriever cvbot.Retriever = engine
	if cli.Verbose {
		retriever = cvslog.NewLoggingRetriever(engine, logger)
	}

	aggregator, err := aggregate.New(facts, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build fact aggregator: %w", err)
	}

	deps.Orchestrator = &chat.Orchestrator{
		Router:     deps.Router,
		Retriever:  retriever,
		Aggregator: aggregator,
		Contacts:   *contacts,
		TopK:       cli.TopK,
	}
	deps.Asker = gemini.NewAsker(client, cli.Model)

	return nil
}

func (m *Main) loadFacts(cli *CLI, vault *secrets.Vault) ([]*cvbot.AtomicFact, error) {
	if vault != nil {
		return fs.LoadEncryptedFacts(vault, filepath.Join(cli.DataDir, factsFile+sealedSuffix))
	}
	return fs.LoadFacts(filepath.Join(cli.DataDir, factsFile))
}

func (m *Main) loadAnchors(cli *CLI, vault *secrets.Vault) (cvbot.AnchorSet, error) {
	if vault != nil {
		return fs.LoadEncryptedAnchors(vault, filepath.Join(cli.DataDir, anchorsFile+sealedSuffix))
	}
	return fs.LoadAnchors(filepath.Join(cli.DataDir, anchorsFile))
}

func (m *Main) loadContacts(cli *CLI, vault *secrets.Vault) (*cvbot.ContactInfo, error) {
	if vault != nil {
		return fs.LoadEncryptedContacts(vault, filepath.Join(cli.DataDir, contactsFile+sealedSuffix))
	}
	return fs.LoadContacts(filepath.Join(cli.DataDir, contactsFile))
}
