package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/tienn/cvbot"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements cvbot.Asker at compile time.
var _ cvbot.Asker = (*Asker)(nil)

// Asker implements cvbot.Asker using Google Gemini. It carries the
// orchestrator's assembled system prompt across the outer boundary.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers the question using the given system prompt. Temperature
// is pinned to zero so answers stay grounded in the supplied context.
func (a *Asker) Ask(ctx context.Context, systemPrompt, question string) (string, error) {
	if systemPrompt == "" {
		return "", cvbot.Errorf(cvbot.EINVALID, "system prompt required")
	}
	if question == "" {
		return "", cvbot.Errorf(cvbot.EINVALID, "question required")
	}

	temp := float32(0)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature: &temp,
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: question}},
		}},
		config,
	)
	if err != nil {
		return "", cvbot.Errorf(cvbot.EPROVIDER, "gemini generate: %v", err)
	}
	if result == nil {
		return "", cvbot.Errorf(cvbot.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}
