package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
baseUrl: https://example.com
highlight:
  enabled: true
  theme: dracula
anchors:
  insert: left
templates:
  dir: ./templates
markdown:
  tables: false
pages:
  other.md: /other/
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if cfg.BaseURL != "https://example.com" {
			t.Errorf("unexpected baseUrl: %q", cfg.BaseURL)
		}
		if !cfg.Highlight.Enabled || cfg.Highlight.Theme != "dracula" {
			t.Errorf("unexpected highlight config: %+v", cfg.Highlight)
		}
		if cfg.Anchors.Insert != "left" {
			t.Errorf("unexpected anchors config: %+v", cfg.Anchors)
		}
		if cfg.Templates.Dir != "./templates" {
			t.Errorf("unexpected templates config: %+v", cfg.Templates)
		}
		if cfg.Markdown.TablesEnabled() {
			t.Error("tables should be disabled")
		}
		if !cfg.Markdown.FootnotesEnabled() {
			t.Error("footnotes should default to enabled")
		}
		if cfg.Pages["other.md"] != "/other/" {
			t.Errorf("unexpected pages table: %v", cfg.Pages)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, "baseUrl: [unclosed"))
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("expected ErrConfigParse, got %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, "nope: 1\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("expected ErrConfigParse, got %v", err)
		}
	})

	t.Run("invalid anchor mode", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, "anchors:\n  insert: sideways\n"))
		if !errors.Is(err, ErrInvalidAnchorMode) {
			t.Fatalf("expected ErrInvalidAnchorMode, got %v", err)
		}
	})

	t.Run("empty permalink rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, "pages:\n  other.md: \"\"\n"))
		if !errors.Is(err, ErrEmptyPermalink) {
			t.Fatalf("expected ErrEmptyPermalink, got %v", err)
		}
	})
}

func TestMarkdownConfig_Defaults(t *testing.T) {
	t.Parallel()

	var m MarkdownConfig
	if !m.TablesEnabled() || !m.FootnotesEnabled() {
		t.Error("zero value must enable both capabilities")
	}

	off := false
	m = MarkdownConfig{Tables: &off, Footnotes: &off}
	if m.TablesEnabled() || m.FootnotesEnabled() {
		t.Error("explicit false must disable both capabilities")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Highlight.Enabled {
		t.Error("highlighting should default to off")
	}
	if cfg.Anchors.Insert != "none" {
		t.Errorf("anchors should default to none, got %q", cfg.Anchors.Insert)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}
