// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimeout bounds a single backend probe.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxProbes caps how many probes run at once in a batch check.
	DefaultMaxProbes = 8
)

// DefaultInterpreters is the Python interpreter fallback chain.
var DefaultInterpreters = []string{"python3", "python"}

// Config holds preflight configuration
type Config struct {
	// Timeout is the per-probe time limit
	Timeout Duration `yaml:"timeout"`

	// MaxProbes caps concurrent probes in one batch check
	MaxProbes int `yaml:"max_probes"`

	// Interpreters is the Python interpreter fallback chain
	Interpreters []string `yaml:"interpreters"`

	// Debug enables debug logging
	Debug bool `yaml:"debug"`

	// Logger for custom logging
	Logger *log.Logger `yaml:"-"`
}

// Duration wraps time.Duration so config files can use "10s" style values.
type Duration time.Duration

// UnmarshalYAML parses a duration from its string form.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Timeout:      Duration(DefaultTimeout),
		MaxProbes:    DefaultMaxProbes,
		Interpreters: DefaultInterpreters,
		Debug:        false,
	}
}

// Normalize fills zero-valued fields with defaults so a partially
// populated Config is always usable.
func (c *Config) Normalize() {
	if c.Timeout <= 0 {
		c.Timeout = Duration(DefaultTimeout)
	}
	if c.MaxProbes <= 0 {
		c.MaxProbes = DefaultMaxProbes
	}
	if len(c.Interpreters) == 0 {
		c.Interpreters = DefaultInterpreters
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "preflight", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "preflight", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
