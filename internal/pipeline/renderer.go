package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/relextract/slotscan/internal/model"
)

// Renderer writes run reports as JSON and Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# Slot Mention Report\n\n")
	b.WriteString(fmt.Sprintf("- Source: `%s`\n", report.Source))
	b.WriteString(fmt.Sprintf("- Annotated: %s\n\n", report.AnnotatedAt.Format("2006-01-02 15:04:05 UTC")))

	stats := report.Stats
	b.WriteString("## Statistics\n\n")
	b.WriteString("| Documents | Sentences | Tokens | Primary entities | Slot mentions | Modifiers | Pronoun rewrites |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	b.WriteString(fmt.Sprintf("| %d | %d | %d | %d | %d | %d | %d |\n\n",
		stats.Documents, stats.Sentences, stats.Tokens, stats.PrimaryEntities,
		stats.SlotMentions, stats.ModifierTokens, stats.PronounRewrites))

	if len(stats.SlotsByType) > 0 {
		b.WriteString("### Slot mentions by type\n\n")
		types := make([]string, 0, len(stats.SlotsByType))
		for t := range stats.SlotsByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			b.WriteString(fmt.Sprintf("- %s: %d\n", t, stats.SlotsByType[t]))
		}
		b.WriteString("\n")
	}

	if len(report.Signals) > 0 {
		b.WriteString("## Signals\n\n")
		for _, signal := range report.Signals {
			b.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", signal.Type, signal.Severity, signal.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Slot Mentions\n\n")
	wroteAny := false
	for _, doc := range report.Documents {
		for si, sent := range doc.Sentences {
			if len(sent.Slots) == 0 {
				continue
			}
			wroteAny = true
			b.WriteString(fmt.Sprintf("### %s, sentence %d\n\n", doc.ID, si))
			b.WriteString(fmt.Sprintf("> %s\n\n", strings.Join(sent.Words(), " ")))
			for _, slot := range sent.Slots {
				name := strings.Join(sent.Words()[slot.Extent.Start:slot.Extent.End], " ")
				b.WriteString(fmt.Sprintf("- `[%d,%d)` %s: %q", slot.Extent.Start, slot.Extent.End, slot.Type, name))
				if slot.NormalizedName != "" && slot.NormalizedName != name {
					b.WriteString(fmt.Sprintf(" (normalized: %q)", slot.NormalizedName))
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	if !wroteAny {
		b.WriteString("No candidate slot mentions.\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by slotscan. Candidates are proposals, not verified relations.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderLLMMarkdown writes pre-rendered LLM summary Markdown to its own file,
// deliberately separate from the main report.
func (r *Renderer) RenderLLMMarkdown(markdown string, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a one-screen run summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	stats := report.Stats

	fmt.Println()
	fmt.Printf("Source:            %s\n", report.Source)
	fmt.Printf("Documents:         %d (%d sentences, %d tokens)\n", stats.Documents, stats.Sentences, stats.Tokens)
	fmt.Printf("Primary entities:  %d\n", stats.PrimaryEntities)
	fmt.Printf("Slot mentions:     %d\n", stats.SlotMentions)
	fmt.Printf("Modifier tokens:   %d\n", stats.ModifierTokens)
	fmt.Printf("Pronoun rewrites:  %d\n", stats.PronounRewrites)
	if stats.MissingParses > 0 {
		fmt.Printf("Missing parses:    %d\n", stats.MissingParses)
	}

	for _, signal := range report.Signals {
		if signal.Severity == model.SeverityInfo {
			continue
		}
		fmt.Printf("[%s] %s\n", strings.ToUpper(string(signal.Severity)), signal.Description)
	}
	fmt.Println()
}
