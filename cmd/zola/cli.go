package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	zola "github.com/kianmeng/zola"
	"github.com/kianmeng/zola/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput     = errors.New("usage: zola [flags] <input.md>")
	ErrInvalidExtension = errors.New("input must have a .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
)

// run renders one markdown file to HTML using the merged config and flags.
func run(flags *cliFlags, args []string) error {
	if len(args) != 1 {
		return ErrMissingInput
	}
	input := args[0]
	if ext := filepath.Ext(input); ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
	}

	content, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	rc, err := buildContext(flags, cfg, input)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Rendering %s (theme=%s, anchors=%s)\n",
			input, rc.HighlightTheme, rc.InsertAnchor)
	}

	res, err := zola.Render(string(content), rc)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}

	outPath := flags.out
	if outPath == "" {
		outPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
	}
	if err := os.WriteFile(outPath, []byte(res.HTML), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flags.tocOut != "" {
		if err := writeTOC(flags.tocOut, res.TOC); err != nil {
			return err
		}
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Created %s (%d headers)\n", outPath, len(res.TOC))
	}
	return nil
}

// loadConfig loads the site config or falls back to defaults.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.Default(), nil
	}
	return config.Load(flags.config)
}

// buildContext merges flags over the site config into a render context.
func buildContext(flags *cliFlags, cfg *config.Config, input string) (*zola.Context, error) {
	anchorsMode := cfg.Anchors.Insert
	if flags.anchors != "" {
		anchorsMode = flags.anchors
	}
	insert, err := zola.ParseInsertAnchor(anchorsMode)
	if err != nil {
		return nil, err
	}

	theme := cfg.Highlight.Theme
	if flags.theme != "" {
		theme = flags.theme
	}

	baseURL := cfg.BaseURL
	if flags.baseURL != "" {
		baseURL = flags.baseURL
	}

	ts := zola.NewTemplateSet()
	if cfg.Templates.Dir != "" {
		if err := ts.LoadDir(cfg.Templates.Dir); err != nil {
			return nil, err
		}
	}

	return &zola.Context{
		HighlightCode:    cfg.Highlight.Enabled && !flags.noHighlight,
		HighlightTheme:   theme,
		CurrentPermalink: currentPermalink(flags, cfg, baseURL, input),
		InsertAnchor:     insert,
		Permalinks:       cfg.Pages,
		Templates:        ts,
		DisableTables:    !cfg.Markdown.TablesEnabled(),
		DisableFootnotes: !cfg.Markdown.FootnotesEnabled(),
	}, nil
}

// currentPermalink resolves the permalink of the page being rendered: an
// explicit flag wins, then the pages table, then a path derived from the
// base URL and the input file stem.
func currentPermalink(flags *cliFlags, cfg *config.Config, baseURL, input string) string {
	if flags.permalink != "" {
		return flags.permalink
	}
	if permalink, ok := cfg.Pages[filepath.ToSlash(input)]; ok {
		return strings.TrimSuffix(baseURL, "/") + permalink
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return strings.TrimSuffix(baseURL, "/") + "/" + stem + "/"
}

// writeTOC marshals the table of contents as indented JSON.
func writeTOC(path string, toc []*zola.Header) error {
	data, err := json.MarshalIndent(toc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding table of contents: %w", err)
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing table of contents: %w", err)
	}
	return nil
}

// printUsage writes the command usage and flag help.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: zola [flags] <input.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders a markdown file to HTML with syntax highlighting,")
	fmt.Fprintln(w, "shortcodes, header anchors, and relative link resolution.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
