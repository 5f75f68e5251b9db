// Package pipeline orchestrates one annotation run: read documents, validate
// them, annotate every sentence, aggregate statistics, and render the report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/relextract/slotscan/internal/annotate"
	"github.com/relextract/slotscan/internal/gazetteer"
	"github.com/relextract/slotscan/internal/input"
	"github.com/relextract/slotscan/internal/llm"
	"github.com/relextract/slotscan/internal/model"
	"github.com/relextract/slotscan/internal/score"
	"github.com/relextract/slotscan/internal/validate"
)

// Pipeline orchestrates the complete annotation process
type Pipeline struct {
	registry   *input.Registry
	annotator  *annotate.Annotator
	validator  *validate.Validator
	scorer     *score.Scorer
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional LLM summarizer (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	gaz, err := gazetteer.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build gazetteer: %w", err)
	}

	// Create LLM summarizer if configured
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		llmConfig := llm.ConfigFromModel(cfg.LLM)
		s, err := llm.NewSummarizer(llmConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		registry:   input.NewRegistry(),
		annotator:  annotate.New(gaz, annotate.NewWindowChecker(cfg.Proximity.MaxDistance)),
		validator:  validate.NewValidator(cfg.Concurrency.ValidationWorkers),
		scorer:     score.NewScorer(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}, nil
}

// AnnotateFile annotates every document in a file and builds the run report.
func (p *Pipeline) AnnotateFile(ctx context.Context, path string) (*model.Report, error) {
	// 1. Read documents
	docs, err := p.registry.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents in %s", path)
	}

	// 2. Validate input before touching any sentence
	results, err := p.validator.Validate(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}
	if err := validate.FirstError(results); err != nil {
		return nil, err
	}

	// 3. Annotate sentences concurrently
	stats, err := p.annotateDocuments(ctx, docs)
	if err != nil {
		return nil, err
	}

	// 4. Build report
	report := &model.Report{
		Source:      path,
		AnnotatedAt: time.Now().UTC(),
		Documents:   docs,
		Stats:       stats,
		Signals:     p.scorer.Signals(stats),
	}

	// 5. Generate LLM summary if enabled (AFTER annotation, never affects output)
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		llmSummary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			// Don't fail the entire run, just warn
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if llmSummary != nil {
			report.LLM = llmSummary
		}
	}

	return report, nil
}

// annotateDocuments runs the annotator over every sentence, bounded by the
// configured worker count, and aggregates run statistics.
func (p *Pipeline) annotateDocuments(ctx context.Context, docs []*model.Document) (model.Stats, error) {
	type unit struct {
		sent     *model.Sentence
		docLabel string
		sentIdx  int
	}
	var units []unit
	stats := model.Stats{
		Documents:   len(docs),
		SlotsByType: make(map[string]int),
	}
	for di, doc := range docs {
		label := doc.ID
		if label == "" {
			label = fmt.Sprintf("document %d", di+1)
		}
		for si, sent := range doc.Sentences {
			units = append(units, unit{sent: sent, docLabel: label, sentIdx: si})
			stats.Sentences++
			stats.Tokens += len(sent.Tokens)
			stats.PrimaryEntities += len(sent.Entities)
		}
	}

	workers := p.config.Concurrency.Workers
	if workers <= 0 {
		workers = 1
	}

	sentResults := make([]annotate.SentenceResult, len(units))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, u := range units {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, sent *model.Sentence) {
			defer wg.Done()
			defer func() { <-semaphore }()
			sentResults[idx] = p.annotator.AnnotateSentence(sent)
		}(i, u.sent)
	}
	wg.Wait()

	for i, r := range sentResults {
		stats.SlotMentions += len(r.Slots)
		stats.ModifierTokens += r.ModifierTokens
		stats.PronounRewrites += r.PronounRewrites
		for _, slot := range r.Slots {
			stats.SlotsByType[slot.Type]++
		}
		if !r.HadParse {
			stats.MissingParses++
			if p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: %s, sentence %d has no parse tree; modifier pass skipped\n",
					units[i].docLabel, units[i].sentIdx)
			}
		}
		if len(units[i].sent.Entities) > 0 && len(r.Slots) == 0 {
			stats.EmptyCandidates++
		}
	}

	return stats, nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	// Render JSON
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	// Render Markdown
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Render LLM summary to separate file if present
	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmMdPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		llmMarkdown := llm.RenderSeparateMarkdown(report.LLM)
		if err := p.renderer.RenderLLMMarkdown(llmMarkdown, llmMdPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote LLM Summary: %s\n", llmMdPath)
		}
	}

	// Print summary to stdout
	p.renderer.RenderSummary(report)

	return nil
}
