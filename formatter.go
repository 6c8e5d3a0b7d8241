package cvbot

import (
	"fmt"
	"strings"
)

// noFactsLine is used when a query produced no quantitative facts.
const noFactsLine = "No specific quantitative data for this query."

// BuildSystemPrompt assembles the language-model system prompt from a
// context bundle: the resolved intent, the immutable quantitative fact
// lines, and the ranked evidence snippets with provenance.
func BuildSystemPrompt(b *ContextBundle) string {
	var sb strings.Builder

	sb.WriteString("You are an AI assistant representing a candidate. Answer the user's question based ONLY on the context below.\n\n")

	sb.WriteString("=== USER INTENT ===\n")
	fmt.Fprintf(&sb, "The user is asking about: %s\n\n", strings.ToUpper(b.Intent))

	sb.WriteString("=== KEY FACTS (Immutable Numbers) ===\n")
	if len(b.Facts) == 0 {
		sb.WriteString(noFactsLine)
		sb.WriteString("\n")
	} else {
		for _, fact := range b.Facts {
			sb.WriteString(fact)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	sb.WriteString("=== RELEVANT EXPERIENCE SNIPPETS ===\n")
	for _, snippet := range b.Snippets {
		fmt.Fprintf(&sb, "- [%s]: %s\n", snippet.Context, snippet.Text)
	}
	sb.WriteString("\n")

	sb.WriteString("=== INSTRUCTIONS ===\n")
	sb.WriteString("1. If 'Key Facts' are present, cite the number of years explicitly.\n")
	sb.WriteString("2. Use the 'Experience Snippets' to provide evidence and examples.\n")
	sb.WriteString("3. Keep the tone professional, confident, and concise.")

	return sb.String()
}

// FormatYears renders a month count as a years string with two decimal
// places, e.g. 30 months as "2.50".
func FormatYears(months int) string {
	return fmt.Sprintf("%.2f", float64(months)/12.0)
}
