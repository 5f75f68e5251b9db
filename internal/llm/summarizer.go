package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/relextract/slotscan/internal/model"
)

// Summarizer generates optional run summaries via a configured provider.
// A Summarizer with no provider is valid and simply disabled.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// ProviderName returns the configured provider's name, or "".
func (s *Summarizer) ProviderName() string {
	if !s.IsEnabled() {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces an LLM summary of the report. Returns nil (no
// error) when disabled. Provider failures never fail the run; they are
// recorded as warnings on the summary instead.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.LLMSummary{
			Enabled:  false,
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("Provider %s is not available (check API key / endpoint)", s.provider.Name())},
		}, nil
	}

	summary := &model.LLMSummary{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    s.config.Model,
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("Summary generation failed: %v", err))
		return summary, nil
	}

	summary.Model = resp.Model
	summary.SummaryMD = resp.Summary
	if resp.TokensUsed > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("Tokens used: %d", resp.TokensUsed))
	}
	return summary, nil
}

// RenderSeparateMarkdown renders an LLM summary as a standalone Markdown
// document, clearly marked as machine-generated commentary.
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	if summary == nil || !summary.Enabled {
		return ""
	}

	var b strings.Builder

	b.WriteString("# LLM Summary\n\n")
	b.WriteString("**GENERATED CONTENT** - commentary only. All slot mentions, modifiers, and statistics were determined independently of the LLM.\n\n")
	b.WriteString(fmt.Sprintf("- Provider: %s\n", summary.Provider))
	b.WriteString(fmt.Sprintf("- Model: %s\n\n", summary.Model))

	if summary.SummaryMD == "" {
		b.WriteString("No summary generated.\n")
	} else {
		b.WriteString(summary.SummaryMD)
		b.WriteString("\n")
	}

	if len(summary.Warnings) > 0 {
		b.WriteString("\n## Notes\n\n")
		for _, w := range summary.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}
