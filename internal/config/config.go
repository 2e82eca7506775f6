// Package config handles application configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Auth       AuthConfig       `yaml:"auth"`
	Database   DatabaseConfig   `yaml:"database"`
	Sources    SourcesConfig    `yaml:"sources"`
	Resolver   ResolverConfig   `yaml:"resolver"`
	Definition DefinitionConfig `yaml:"definition"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Notify     NotifyConfig     `yaml:"notify"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port              int `yaml:"port"`
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// AuthConfig holds the shared secret compared against bearer tokens on the
// trigger endpoints.
type AuthConfig struct {
	Token string `yaml:"token"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SourcesConfig enables or disables individual answer strategies. Disabling
// a strategy removes it from the priority list; order is fixed in code.
type SourcesConfig struct {
	Official         bool `yaml:"official"`
	Review           bool `yaml:"review"`
	TomsGuide        bool `yaml:"tomsguide"`
	TechRadar        bool `yaml:"techradar"`
	RockPaperShotgun bool `yaml:"rockpapershotgun"`
}

type ResolverConfig struct {
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`
}

type DefinitionConfig struct {
	Provider string `yaml:"provider"` // none, dictionary, openai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type SchedulerConfig struct {
	Enabled bool     `yaml:"enabled"`
	Cron    []string `yaml:"cron"`
}

type NotifyConfig struct {
	Enabled bool   `yaml:"enabled"`
	SiteURL string `yaml:"site_url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			RequestsPerMinute: 60,
		},
		Database: DatabaseConfig{
			Path: "./data/wordled.db",
		},
		Sources: SourcesConfig{
			Official:         true,
			Review:           true,
			TomsGuide:        true,
			TechRadar:        true,
			RockPaperShotgun: true,
		},
		Resolver: ResolverConfig{
			FetchTimeoutSeconds: 20,
		},
		Definition: DefinitionConfig{
			Provider: "dictionary",
		},
		Scheduler: SchedulerConfig{
			Enabled: true,
			Cron:    []string{"5 0 * * *", "0 6 * * *", "0 12 * * *"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run with -generate-config to create one)", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content := interpolateEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GenerateSample creates a sample configuration file.
func GenerateSample(path string) error {
	sample := `# wordled configuration

server:
  port: 8080
  requests_per_minute: 60

auth:
  # Shared secret for the resolve trigger endpoints.
  token: ${WORDLED_TOKEN}

database:
  path: ./data/wordled.db

# Answer sources. The official API always runs first; the scrapers are
# fallbacks consulted in fixed priority order.
sources:
  official: true
  review: true
  tomsguide: true
  techradar: true
  rockpapershotgun: true

resolver:
  fetch_timeout_seconds: 20

definition:
  provider: dictionary  # none, dictionary, openai
  # For OpenAI-generated glosses:
  # provider: openai
  # model: gpt-4o-mini
  # api_key: ${OPENAI_API_KEY}

scheduler:
  enabled: true
  cron:
    - "5 0 * * *"
    - "0 6 * * *"
    - "0 12 * * *"

notify:
  enabled: false
  site_url: https://example.com

logging:
  level: info  # debug, info, warn, error
  format: json # json or text
`
	return os.WriteFile(path, []byte(sample), 0644)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Auth.Token == "" || strings.HasPrefix(c.Auth.Token, "${") {
		return fmt.Errorf("auth token is required (set WORDLED_TOKEN)")
	}

	if c.Resolver.FetchTimeoutSeconds < 1 {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}

	switch c.Definition.Provider {
	case "", "none", "dictionary":
	case "openai":
		if c.Definition.APIKey == "" {
			return fmt.Errorf("OpenAI API key is required for the openai definition provider")
		}
	default:
		return fmt.Errorf("unsupported definition provider: %s", c.Definition.Provider)
	}

	if c.Notify.Enabled && c.Notify.SiteURL == "" {
		return fmt.Errorf("notify.site_url is required when notifications are enabled")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("unsupported log level: %s", c.Logging.Level)
	}

	return nil
}

// interpolateEnvVars replaces ${VAR_NAME} with environment variable values.
func interpolateEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if not set
	})
}
