package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Platform  PlatformConfig  `yaml:"platform"`
	Classpath ClasspathConfig `yaml:"classpath"`
	Libraries LibraryTables   `yaml:"libraries"`
	Rewrite   RewriteConfig   `yaml:"rewrite"`
	State     StateConfig     `yaml:"state"`
	Daemon    DaemonConfig    `yaml:"daemon"`
	Events    EventsConfig    `yaml:"events"`
}

// PlatformConfig locates the runtime platform and its API documentation.
type PlatformConfig struct {
	Home   string `yaml:"home,omitempty"`  // falls back to $JAVA_HOME when empty
	DocURL string `yaml:"doc_url,omitempty"`
}

// ClasspathConfig describes where resolved dependency artifacts live.
type ClasspathConfig struct {
	Dirs       []string `yaml:"dirs,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// LibraryTables holds the two open name -> documentation URL mapping sets.
type LibraryTables struct {
	External map[string]string `yaml:"external,omitempty"` // precompiled third-party libraries
	Source   map[string]string `yaml:"source,omitempty"`   // libraries built from source in the same ecosystem
}

// RewriteConfig controls the link rewrite pass.
type RewriteConfig struct {
	DocsRoot      string   `yaml:"docs_root"`
	Extensions    []string `yaml:"extensions,omitempty"`     // document extensions to scan
	PageExtension string   `yaml:"page_extension,omitempty"` // extension appended to converted fragments
}

// StateConfig controls the run history database.
type StateConfig struct {
	Path string `yaml:"path,omitempty"` // sqlite file, ":memory:" for ephemeral
}

// DaemonConfig controls watch mode. Durations are strings in Go duration
// syntax ("2s", "30m") and parsed on access.
type DaemonConfig struct {
	Listen   string `yaml:"listen,omitempty"`
	Debounce string `yaml:"debounce,omitempty"`
	Interval string `yaml:"interval,omitempty"` // optional periodic pass, empty disables
}

// DebounceDuration parses the debounce window, falling back to 2s.
func (d DaemonConfig) DebounceDuration() time.Duration {
	if v, err := time.ParseDuration(d.Debounce); err == nil && v > 0 {
		return v
	}
	return 2 * time.Second
}

// IntervalDuration parses the periodic pass interval; zero means disabled.
func (d DaemonConfig) IntervalDuration() time.Duration {
	if v, err := time.ParseDuration(d.Interval); err == nil && v > 0 {
		return v
	}
	return 0
}

// EventsConfig controls NATS event publication.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env if present; existing process environment wins.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that have no sensible default.
func (c *Config) Validate() error {
	if c.Rewrite.DocsRoot == "" {
		return fmt.Errorf("rewrite.docs_root is required")
	}
	if c.Events.Enabled && c.Events.NATSURL == "" {
		return fmt.Errorf("events.nats_url is required when events are enabled")
	}
	return nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	return os.WriteFile(configPath, []byte(exampleConfig), 0o644)
}

const exampleConfig = `# doclink configuration
#
# Rewrites generator-style API links (base#dotted.symbol.Path) in a generated
# documentation tree to the target site convention (base?slash/Path.html).

platform:
  # Root of the runtime platform installation. Defaults to $JAVA_HOME.
  # home: /usr/lib/jvm/default
  # Documentation of the platform standard library.
  doc_url: https://docs.oracle.com/javase/8/docs/api/

classpath:
  # Directories scanned for resolved dependency artifacts.
  dirs:
    - lib
  extensions:
    - .jar

libraries:
  # Precompiled third-party libraries with externally hosted API docs.
  external:
    slf4j-api: https://www.slf4j.org/api/
  # Libraries built from source within the same ecosystem.
  source:
    config: https://lightbend.github.io/config/latest/api/

rewrite:
  # Tree of generated documents to patch in place.
  docs_root: ./target/api
  extensions:
    - .html
  page_extension: .html

state:
  # Run history database. Use ":memory:" to disable persistence.
  path: ./doclink.db

daemon:
  listen: ":8745"
  debounce: 2s
  # interval: 30m

events:
  enabled: false
  nats_url: nats://localhost:4222
  subject: doclink.runs
`
