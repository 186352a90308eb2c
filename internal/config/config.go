// Package config loads the chartopts CLI settings from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"chartopts/internal/logger"
)

// Environment variables that override the file.
const (
	EnvLogLevel  = "CHARTOPTS_LOG_LEVEL"
	EnvLogFormat = "CHARTOPTS_LOG_FORMAT"
)

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputJS   = "js"
)

// ErrInvalid is wrapped by every validation failure of a Config.
var ErrInvalid = errors.New("invalid config")

// Config holds CLI settings.
type Config struct {
	LogLevel     string `yaml:"logLevel,omitempty"`
	LogFormat    string `yaml:"logFormat,omitempty"`
	Strict       bool   `yaml:"strict,omitempty"`
	Indent       int    `yaml:"indent,omitempty"`
	OutputFormat string `yaml:"outputFormat,omitempty"`
	Parallelism  int    `yaml:"parallelism,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads a YAML config file. An empty path yields Default with the
// environment applied.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		applyEnv(cfg)

		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML config data, then applies defaults and the environment.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = string(logger.InfoLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = string(logger.FormatConsole)
	}

	if cfg.Indent == 0 {
		cfg.Indent = 2
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputJSON
	}

	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}

// Validate checks the settings after defaults are applied.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(logger.Level(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if _, err := logger.ParseFormat(logger.Format(c.LogFormat)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("%w: indent must be in 0..8, got %d", ErrInvalid, c.Indent)
	}

	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism must not be negative, got %d", ErrInvalid, c.Parallelism)
	}

	switch strings.ToLower(c.OutputFormat) {
	case OutputJSON, OutputYAML, OutputJS:
		c.OutputFormat = strings.ToLower(c.OutputFormat)
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalid, c.OutputFormat)
	}

	return nil
}

// IndentString returns Indent as spaces.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}
