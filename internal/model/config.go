package model

import "time"

// Config is the full slotscan configuration, assembled from defaults, the
// config file, SLOTSCAN_* environment variables, and CLI flags.
type Config struct {
	Gazetteer   GazetteerConfig   `json:"gazetteer" yaml:"gazetteer"`
	Proximity   ProximityConfig   `json:"proximity" yaml:"proximity"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Output      OutputConfig      `json:"output" yaml:"output"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
}

// GazetteerConfig configures the geography lookup collaborator.
type GazetteerConfig struct {
	// Mode selects the backend: "static" (word lists) or "remote" (HTTP service)
	Mode string `json:"mode" yaml:"mode"`

	// Word-list files, one name per line; empty paths fall back to built-ins
	CityFile    string `json:"city_file,omitempty" yaml:"city_file,omitempty"`
	RegionFile  string `json:"region_file,omitempty" yaml:"region_file,omitempty"`
	CountryFile string `json:"country_file,omitempty" yaml:"country_file,omitempty"`

	// Remote service settings
	BaseURL           string        `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `json:"burst" yaml:"burst"`
	HTTPProxy         string        `json:"http_proxy,omitempty" yaml:"http_proxy,omitempty"`
	HTTPSProxy        string        `json:"https_proxy,omitempty" yaml:"https_proxy,omitempty"`
	NoProxy           string        `json:"no_proxy,omitempty" yaml:"no_proxy,omitempty"`
}

// ProximityConfig configures the closeness predicate for slot candidates.
type ProximityConfig struct {
	// MaxDistance is the largest token gap between a candidate span and the
	// nearest primary entity extent; <0 disables the check entirely
	MaxDistance int `json:"max_distance" yaml:"max_distance"`
}

// ConcurrencyConfig controls sentence- and document-level parallelism.
type ConcurrencyConfig struct {
	Workers           int `json:"workers" yaml:"workers"`
	ValidationWorkers int `json:"validation_workers" yaml:"validation_workers"`
}

// CacheConfig controls gazetteer lookup caching.
type CacheConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Dir       string        `json:"dir,omitempty" yaml:"dir,omitempty"`
	MemoryTTL time.Duration `json:"memory_ttl" yaml:"memory_ttl"`
	DiskTTL   time.Duration `json:"disk_ttl" yaml:"disk_ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// LLMConfig configures the optional run-report summarizer.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty" yaml:"provider,omitempty"` // "" = disabled
	Model     string `json:"model,omitempty" yaml:"model,omitempty"`
	APIKey    string `json:"-" yaml:"-"`
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout   int    `json:"timeout" yaml:"timeout"` // seconds
	MaxTokens int    `json:"max_tokens" yaml:"max_tokens"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		Gazetteer: GazetteerConfig{
			Mode:              "static",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 10,
			Burst:             5,
		},
		Proximity: ProximityConfig{
			MaxDistance: 30,
		},
		Concurrency: ConcurrencyConfig{
			Workers:           4,
			ValidationWorkers: 8,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
