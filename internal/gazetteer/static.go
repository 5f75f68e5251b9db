package gazetteer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Static is a word-list gazetteer. Lookups are case-insensitive exact matches.
type Static struct {
	cities    map[string]bool
	regions   map[string]bool
	countries map[string]bool
}

// NewStatic creates a gazetteer from in-memory name lists.
func NewStatic(cities, regions, countries []string) *Static {
	return &Static{
		cities:    toSet(cities),
		regions:   toSet(regions),
		countries: toSet(countries),
	}
}

// NewStaticFromFiles creates a gazetteer from word-list files, one name per
// line. An empty path falls back to the built-in default list.
func NewStaticFromFiles(cityFile, regionFile, countryFile string) (*Static, error) {
	cities, err := namesOrDefault(cityFile, defaultCities)
	if err != nil {
		return nil, err
	}
	regions, err := namesOrDefault(regionFile, defaultRegions)
	if err != nil {
		return nil, err
	}
	countries, err := namesOrDefault(countryFile, defaultCountries)
	if err != nil {
		return nil, err
	}
	return NewStatic(cities, regions, countries), nil
}

// IsValidCity reports whether the name is a known city.
func (g *Static) IsValidCity(name string) bool {
	return g.cities[normalize(name)]
}

// IsValidRegion reports whether the name is a known state or province.
func (g *Static) IsValidRegion(name string) bool {
	return g.regions[normalize(name)]
}

// IsValidCountry reports whether the name is a known country.
func (g *Static) IsValidCountry(name string) bool {
	return g.countries[normalize(name)]
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		if n := normalize(name); n != "" {
			set[n] = true
		}
	}
	return set
}

func namesOrDefault(path string, fallback []string) ([]string, error) {
	if path == "" {
		return fallback, nil
	}
	return readNames(path)
}

// readNames reads names from a file, one per line, skipping blanks and
// comment lines.
func readNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer func() { _ = file.Close() }()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return names, nil
}
