// Package config loads LexSearch configuration from YAML with
// environment overrides. Hierarchy, lowest to highest precedence:
// hardcoded defaults, config file, LEXSEARCH_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lexafrica/lexsearch/internal/errors"
	"github.com/lexafrica/lexsearch/internal/research"
)

// Config is the complete LexSearch configuration.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Cache     CacheConfig     `yaml:"cache"`
	Completer CompleterConfig `yaml:"completer"`
	Registry  RegistryConfig  `yaml:"registry"`
	Usage     UsageConfig     `yaml:"usage"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SearchConfig holds the ranking weight model and fan-out bounds.
// Weights are positive scalars used as-is; the defaults sum to 1.0.
type SearchConfig struct {
	RelevanceWeight    float64 `yaml:"relevance_weight"`
	RecencyWeight      float64 `yaml:"recency_weight"`
	AuthorityWeight    float64 `yaml:"authority_weight"`
	JurisdictionWeight float64 `yaml:"jurisdiction_weight"`
	Parallelism        int     `yaml:"parallelism"`
	CorpusPath         string  `yaml:"corpus_path"`
}

// CacheConfig bounds the result cache.
type CacheConfig struct {
	Size       int `yaml:"size"`
	TTLSeconds int `yaml:"ttl_seconds"`
}

// CompleterConfig configures the text-completion collaborator.
type CompleterConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RegistryConfig points at the source registry definition. An empty
// path selects the embedded default registry.
type RegistryConfig struct {
	Path string `yaml:"path"`
}

// UsageConfig configures usage-event persistence. An empty path
// disables recording.
type UsageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	FilePath  string `yaml:"file_path"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// New returns the hardcoded defaults.
func New() *Config {
	return &Config{
		Search: SearchConfig{
			RelevanceWeight:    0.4,
			RecencyWeight:      0.3,
			AuthorityWeight:    0.2,
			JurisdictionWeight: 0.1,
			Parallelism:        8,
		},
		Cache: CacheConfig{
			Size:       research.DefaultCacheSize,
			TTLSeconds: int(research.DefaultCacheTTL / time.Second),
		},
		Completer: CompleterConfig{
			Model:          "gemini-1.5-flash",
			TimeoutSeconds: 30,
		},
		Server: ServerConfig{
			Addr: ":8460",
		},
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty or missing), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeConfigNotFound, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("invalid config file %s", path), err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies LEXSEARCH_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("LEXSEARCH_GEMINI_API_KEY"); v != "" {
		c.Completer.APIKey = v
	}
	if v := os.Getenv("LEXSEARCH_GEMINI_MODEL"); v != "" {
		c.Completer.Model = v
	}
	if v := os.Getenv("LEXSEARCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LEXSEARCH_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LEXSEARCH_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Cache.TTLSeconds = n
		}
	}
	if v := os.Getenv("LEXSEARCH_USAGE_DB"); v != "" {
		c.Usage.DBPath = v
	}
	if v := os.Getenv("LEXSEARCH_CORPUS"); v != "" {
		c.Search.CorpusPath = v
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	for name, w := range map[string]float64{
		"relevance_weight":    c.Search.RelevanceWeight,
		"recency_weight":      c.Search.RecencyWeight,
		"authority_weight":    c.Search.AuthorityWeight,
		"jurisdiction_weight": c.Search.JurisdictionWeight,
	} {
		if w < 0 {
			return errors.ConfigError(fmt.Sprintf("search.%s must not be negative, got %g", name, w), nil)
		}
	}
	if c.Search.Parallelism <= 0 {
		return errors.ConfigError("search.parallelism must be positive", nil)
	}
	if c.Cache.Size <= 0 {
		return errors.ConfigError("cache.size must be positive", nil)
	}
	if c.Cache.TTLSeconds <= 0 {
		return errors.ConfigError("cache.ttl_seconds must be positive", nil)
	}
	return nil
}

// SearchOptions converts the config weight model to engine options.
func (c *Config) SearchOptions() research.SemanticSearchOptions {
	opts := research.DefaultSearchOptions()
	opts.RelevanceWeight = c.Search.RelevanceWeight
	opts.RecencyWeight = c.Search.RecencyWeight
	opts.AuthorityWeight = c.Search.AuthorityWeight
	opts.JurisdictionWeight = c.Search.JurisdictionWeight
	return opts
}

// CacheTTL returns the configured TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
