// Package llm generates optional natural-language summaries of annotation
// run reports. Summaries are reporting only: they never influence which slot
// mentions or modifiers the annotator produces.
package llm

import (
	"context"
	"fmt"
	"sort"

	"github.com/relextract/slotscan/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary of the run report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Report is the annotation run report to summarize
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

const systemPrompt = "You are a helpful assistant that summarizes slotscan annotation reports, describing only the numbers the report contains."

// BuildPrompt constructs the default prompt for summarizing a run report.
// The LLM is constrained to the report's own numbers; it must not speculate
// about the underlying text.
func BuildPrompt(report model.Report) string {
	stats := report.Stats

	prompt := fmt.Sprintf(`You are summarizing a slotscan annotation run. slotscan proposes candidate slot mentions and entity modifiers in pre-annotated sentences - it never judges whether the underlying text is correct.

CRITICAL RULES:
1. Only restate numbers that appear below. Do not infer or invent counts.
2. Do not speculate about document content; you only see aggregate statistics.
3. If a count is zero or data is missing, state that explicitly.

Run summary:
- Source: %s
- Documents: %d, sentences: %d, tokens: %d
- Primary entities: %d
- Candidate slot mentions: %d
- Modifier tokens tagged: %d
- Pronoun NER rewrites: %d
- Sentences without a parse tree: %d

Slot mentions by type:
%s
Key signals:
`, report.Source, stats.Documents, stats.Sentences, stats.Tokens,
		stats.PrimaryEntities, stats.SlotMentions, stats.ModifierTokens,
		stats.PronounRewrites, stats.MissingParses, formatSlotTypes(stats.SlotsByType))

	for i, signal := range report.Signals {
		if i >= 3 {
			break
		}
		prompt += fmt.Sprintf("- %s (%s): %s\n", signal.Type, signal.Severity, signal.Description)
	}

	prompt += "\nProvide a 3-4 sentence summary of what this run produced."
	return prompt
}

func formatSlotTypes(byType map[string]int) string {
	if len(byType) == 0 {
		return "(none)\n"
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	out := ""
	for _, t := range types {
		out += fmt.Sprintf("- %s: %d\n", t, byType[t])
	}
	return out
}
