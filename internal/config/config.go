// Package config provides configuration loading for the pedigree CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pedigraph/pedigree"
)

// Config represents the complete CLI configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error (default: info)
	LogLevel string `yaml:"log_level"`
	// CommentPrefix marks comment lines in PED input; empty disables comments
	CommentPrefix *string `yaml:"comment_prefix"`
	// MaxLineBytes bounds a single PED line (default: 1 MiB)
	MaxLineBytes int `yaml:"max_line_bytes"`
	// Filter is applied to every pedigree right after parsing
	Filter FilterConfig `yaml:"filter"`
}

// FilterConfig mirrors pedigree.Filter. An omitted list means "not given".
type FilterConfig struct {
	IncludeFamilies    []string `yaml:"include_families"`
	ExcludeFamilies    []string `yaml:"exclude_families"`
	IncludeIndividuals []string `yaml:"include_individuals"`
	ExcludeIndividuals []string `yaml:"exclude_individuals"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	prefix := "#"
	return &Config{
		LogLevel:      "info",
		CommentPrefix: &prefix,
		MaxLineBytes:  1 << 20,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of Default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load returns Default when path is empty, LoadFromFile otherwise, validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
// A non-nil include list replaces the current one; exclude lists are appended.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.CommentPrefix != nil {
		c.CommentPrefix = other.CommentPrefix
	}
	if other.MaxLineBytes != 0 {
		c.MaxLineBytes = other.MaxLineBytes
	}
	if other.Filter.IncludeFamilies != nil {
		c.Filter.IncludeFamilies = other.Filter.IncludeFamilies
	}
	if other.Filter.IncludeIndividuals != nil {
		c.Filter.IncludeIndividuals = other.Filter.IncludeIndividuals
	}
	c.Filter.ExcludeFamilies = appendNonNil(c.Filter.ExcludeFamilies, other.Filter.ExcludeFamilies)
	c.Filter.ExcludeIndividuals = appendNonNil(c.Filter.ExcludeIndividuals, other.Filter.ExcludeIndividuals)
}

func appendNonNil(dst, src []string) []string {
	if src == nil {
		return dst
	}
	return append(dst, src...)
}

// ParseOptions translates the config into pedigree.Parse options.
func (c *Config) ParseOptions(logger *slog.Logger) []pedigree.Option {
	opts := []pedigree.Option{
		pedigree.WithMaxLineBytes(c.MaxLineBytes),
		pedigree.WithLogger(logger),
	}
	if c.CommentPrefix != nil {
		opts = append(opts, pedigree.WithCommentPrefix(*c.CommentPrefix))
	}
	return opts
}

// PedigreeFilter converts FilterConfig into a pedigree.Filter; nil lists stay nil.
func (f FilterConfig) PedigreeFilter() pedigree.Filter {
	return pedigree.Filter{
		IncludeFamilies:    toSet(f.IncludeFamilies),
		ExcludeFamilies:    toSet(f.ExcludeFamilies),
		IncludeIndividuals: toSet(f.IncludeIndividuals),
		ExcludeIndividuals: toSet(f.ExcludeIndividuals),
	}
}

func toSet(ids []string) pedigree.Set {
	if ids == nil {
		return nil
	}
	return pedigree.NewSet(ids...)
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
