package mock

import (
	"context"

	"github.com/tienn/cvbot"
)

var _ cvbot.Asker = (*Asker)(nil)

// Asker is a mock implementation of cvbot.Asker.
type Asker struct {
	AskFn func(ctx context.Context, systemPrompt, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, systemPrompt, question string) (string, error) {
	return a.AskFn(ctx, systemPrompt, question)
}
