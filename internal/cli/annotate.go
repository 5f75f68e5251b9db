package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/relextract/slotscan/internal/model"
	"github.com/relextract/slotscan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	maxDistance int
	gazMode     string
	gazURL      string
	cityFile    string
	regionFile  string
	countryFile string
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Annotate a document file and generate a slot mention report",
	Long: `Annotate reads pre-tagged documents from a file to:
- Tag entity modifiers inside each primary entity's noun phrase
- Rewrite NER tags of pronouns coreferent with named antecedents
- Propose candidate slot mention spans near primary entities
- Generate transparent, explainable reports

Example:
  slotscan annotate corpus.json
  slotscan annotate corpus.conll --json report.json --md report.md
  slotscan annotate corpus.json --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	// Output flags
	annotateCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	annotateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Annotation flags
	annotateCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall annotation timeout")
	annotateCmd.Flags().IntVar(&maxDistance, "max-distance", 30, "max token gap between a candidate and the nearest primary entity (-1 disables)")

	// Gazetteer flags
	annotateCmd.Flags().StringVar(&gazMode, "gazetteer", "static", "gazetteer backend (static, remote)")
	annotateCmd.Flags().StringVar(&gazURL, "gazetteer-url", "", "remote gazetteer base URL")
	annotateCmd.Flags().StringVar(&cityFile, "cities", "", "city word list, one name per line (default: built-in)")
	annotateCmd.Flags().StringVar(&regionFile, "regions", "", "region word list, one name per line (default: built-in)")
	annotateCmd.Flags().StringVar(&countryFile, "countries", "", "country word list, one name per line (default: built-in)")
	annotateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable gazetteer lookup cache")
	annotateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	annotateCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	annotateCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	annotateCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the run configuration from defaults and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Gazetteer.Mode = gazMode
	cfg.Gazetteer.BaseURL = gazURL
	cfg.Gazetteer.CityFile = cityFile
	cfg.Gazetteer.RegionFile = regionFile
	cfg.Gazetteer.CountryFile = countryFile
	cfg.Proximity.MaxDistance = maxDistance
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Annotating: %s\n", file)
		fmt.Fprintf(os.Stderr, "Gazetteer: %s\n", gazMode)
		fmt.Fprintf(os.Stderr, "Max distance: %d\n", maxDistance)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.AnnotateFile(ctx, file)
	if err != nil {
		return fmt.Errorf("annotate failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Annotated %d sentences in %d documents\n", report.Stats.Sentences, report.Stats.Documents)
		fmt.Fprintf(os.Stderr, "✓ Proposed %d candidate slot mentions\n", report.Stats.SlotMentions)
		fmt.Fprintf(os.Stderr, "✓ Tagged %d modifier tokens\n", report.Stats.ModifierTokens)
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM summary using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
