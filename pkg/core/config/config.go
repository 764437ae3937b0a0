// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     config
// Description: Typed configuration for the why command line tool
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	mdwconfig "github.com/msto63/why/foundation/core/config"
	mdwerror "github.com/msto63/why/foundation/core/error"
	"github.com/msto63/why/foundation/why/lexer"
	"github.com/msto63/why/foundation/why/parser"
)

// EnvVar names the environment variable holding the config file path
const EnvVar = "WHY_CONFIG"

// DefaultPaths are searched in order when EnvVar is unset
var DefaultPaths = []string{
	"./why.toml",
	"./why.yaml",
	"~/.config/why/why.toml",
}

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Lexer   LexerConfig   `toml:"lexer" yaml:"lexer"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`

	// path of the file the configuration was loaded from
	source string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// LexerConfig mirrors lexer.Options
type LexerConfig struct {
	Strict          bool `toml:"strict" yaml:"strict"`
	MaxSourceLength int  `toml:"max_source_length" yaml:"max_source_length"`
}

// ParserConfig mirrors parser.Options
type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// CacheConfig configures the check result cache
type CacheConfig struct {
	Enabled *bool    `toml:"enabled" yaml:"enabled"`
	Path    string   `toml:"path" yaml:"path"`
	MaxAge  Duration `toml:"max_age" yaml:"max_age"`
}

// WatchConfig configures check --watch
type WatchConfig struct {
	Debounce   Duration `toml:"debounce" yaml:"debounce"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

// REPLConfig configures the interactive REPL
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = mdwconfig.ExpandPath(path)

	var cfg Config
	if _, err := mdwconfig.LoadFile(path, &cfg, mdwconfig.LoadOptions{}); err != nil {
		return nil, err
	}

	cfg.source = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by WHY_CONFIG, or the first of
// DefaultPaths that exists. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	path, err := mdwconfig.FindConfigFile(DefaultPaths)
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Source returns the file the configuration was loaded from, or "" for
// the defaults
func (c *Config) Source() string {
	return c.source
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = parser.DefaultMaxDepth
	}

	if c.Cache.Enabled == nil {
		enabled := true
		c.Cache.Enabled = &enabled
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "~/.cache/why/checks.db"
	}
	if c.Cache.MaxAge.Duration == 0 {
		c.Cache.MaxAge = Duration{30 * 24 * time.Hour}
	}

	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce = Duration{300 * time.Millisecond}
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".why"}
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "why> "
	}
	if c.REPL.HistorySize == 0 {
		c.REPL.HistorySize = 100
	}
}

// expandEnvVars expands environment variables and ~ in paths
func (c *Config) expandEnvVars() {
	c.General.LogFile = mdwconfig.ExpandPath(c.General.LogFile)
	c.Cache.Path = mdwconfig.ExpandPath(c.Cache.Path)
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}) error {
		return mdwerror.Newf("invalid value for %s: %v", key, value).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithContext(c.source).
			WithDetail("key", key)
	}

	switch {
	case c.Lexer.MaxSourceLength < 0:
		return invalid("lexer.max_source_length", c.Lexer.MaxSourceLength)
	case c.Parser.MaxDepth < 0:
		return invalid("parser.max_depth", c.Parser.MaxDepth)
	case c.Watch.Debounce.Duration < 0:
		return invalid("watch.debounce", c.Watch.Debounce)
	case c.REPL.HistorySize < 0:
		return invalid("repl.history_size", c.REPL.HistorySize)
	}
	return nil
}

// CacheEnabled reports whether the check cache is on
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// LexerOptions maps the [lexer] section onto lexer.Options
func (c *Config) LexerOptions() lexer.Options {
	return lexer.Options{
		Strict:          c.Lexer.Strict,
		MaxSourceLength: c.Lexer.MaxSourceLength,
	}
}

// ParserOptions maps the [parser] section onto parser.Options
func (c *Config) ParserOptions() parser.Options {
	opts := parser.DefaultOptions()
	if c.Parser.MaxDepth > 0 {
		opts.MaxDepth = c.Parser.MaxDepth
	}
	return opts
}
