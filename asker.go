package cvbot

import "context"

// Asker answers a question against an assembled system prompt. This is
// the outer boundary of the system: the core assembles context, the
// Asker carries it to the language model.
type Asker interface {
	// Ask answers the question using the given system prompt.
	Ask(ctx context.Context, systemPrompt, question string) (string, error)
}
