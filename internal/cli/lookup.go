package cli

import (
	"fmt"

	"github.com/relextract/slotscan/internal/gazetteer"
	"github.com/relextract/slotscan/internal/model"
	"github.com/spf13/cobra"
)

// lookupCmd probes the gazetteer directly, useful when tuning word lists or
// debugging a remote backend.
var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Classify a name against the configured gazetteer",
	Long: `Lookup asks the configured gazetteer whether a name denotes a known
city, region, or country. This is the same collaborator the annotator uses
when rewriting coreferent pronoun NER tags.

Example:
  slotscan lookup Paris
  slotscan lookup "New Zealand" --gazetteer remote --gazetteer-url http://localhost:8080`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringVar(&gazMode, "gazetteer", "static", "gazetteer backend (static, remote)")
	lookupCmd.Flags().StringVar(&gazURL, "gazetteer-url", "", "remote gazetteer base URL")
	lookupCmd.Flags().StringVar(&cityFile, "cities", "", "city word list, one name per line (default: built-in)")
	lookupCmd.Flags().StringVar(&regionFile, "regions", "", "region word list, one name per line (default: built-in)")
	lookupCmd.Flags().StringVar(&countryFile, "countries", "", "country word list, one name per line (default: built-in)")
	lookupCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable gazetteer lookup cache")
}

func runLookup(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg := model.DefaultConfig()
	cfg.Gazetteer.Mode = gazMode
	cfg.Gazetteer.BaseURL = gazURL
	cfg.Gazetteer.CityFile = cityFile
	cfg.Gazetteer.RegionFile = regionFile
	cfg.Gazetteer.CountryFile = countryFile
	cfg.Cache.Enabled = !noCache

	gaz, err := gazetteer.FromConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n", name)
	fmt.Printf("  city:    %v\n", gaz.IsValidCity(name))
	fmt.Printf("  region:  %v\n", gaz.IsValidRegion(name))
	fmt.Printf("  country: %v\n", gaz.IsValidCountry(name))

	return nil
}
