// Package config loads the YAML site configuration consumed by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kianmeng/zola/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrInvalidAnchorMode = errors.New("invalid anchors.insert value")
	ErrEmptyPermalink    = errors.New("empty permalink in pages table")
)

// Config holds the site-level rendering configuration.
type Config struct {
	// BaseURL is prepended to page paths when deriving permalinks.
	BaseURL string `yaml:"baseUrl"`

	Highlight HighlightConfig `yaml:"highlight"`
	Anchors   AnchorConfig    `yaml:"anchors"`
	Templates TemplatesConfig `yaml:"templates"`
	Markdown  MarkdownConfig  `yaml:"markdown"`

	// Pages maps relative document paths to their permalinks; it becomes
	// the permalink table used to resolve "./" links.
	Pages map[string]string `yaml:"pages"`
}

// HighlightConfig controls code-block syntax highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Theme   string `yaml:"theme"` // chroma style name; empty = default
}

// AnchorConfig controls header anchor insertion.
type AnchorConfig struct {
	Insert string `yaml:"insert"` // "left", "right", "none" (default: "none")
}

// TemplatesConfig points at caller-supplied shortcode templates.
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // empty = embedded defaults only
}

// MarkdownConfig toggles tokenizer capabilities.
type MarkdownConfig struct {
	Tables    *bool `yaml:"tables"`    // nil = enabled
	Footnotes *bool `yaml:"footnotes"` // nil = enabled
}

// TablesEnabled reports the effective tables capability.
func (m MarkdownConfig) TablesEnabled() bool {
	return m.Tables == nil || *m.Tables
}

// FootnotesEnabled reports the effective footnotes capability.
func (m MarkdownConfig) FootnotesEnabled() bool {
	return m.Footnotes == nil || *m.Footnotes
}

// Validate checks enumerated fields and the pages table.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Anchors.Insert) {
	case "", "none", "left", "right":
	default:
		return fmt.Errorf("%w: %q (must be left, right, or none)", ErrInvalidAnchorMode, c.Anchors.Insert)
	}
	for path, permalink := range c.Pages {
		if permalink == "" {
			return fmt.Errorf("%w: %q", ErrEmptyPermalink, path)
		}
	}
	return nil
}

// Default returns a configuration with highlighting off and no anchors.
func Default() *Config {
	return &Config{
		Highlight: HighlightConfig{Enabled: false},
		Anchors:   AnchorConfig{Insert: "none"},
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
