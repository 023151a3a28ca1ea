package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// cliFlags holds all flags for the render command.
type cliFlags struct {
	config      string
	out         string
	tocOut      string
	baseURL     string
	permalink   string
	theme       string
	anchors     string
	noHighlight bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("zola", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "site config file (YAML)")
	fs.StringVarP(&f.out, "out", "o", "", "output HTML file (default: input with .html extension)")
	fs.StringVar(&f.tocOut, "toc", "", "write the table of contents as JSON to this file (\"-\" = stdout)")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL for derived permalinks (overrides config)")
	fs.StringVar(&f.permalink, "permalink", "", "permalink of the page being rendered (overrides derivation)")
	fs.StringVar(&f.theme, "theme", "", "highlight theme name (overrides config)")
	fs.StringVar(&f.anchors, "anchors", "", "anchor insertion: left, right, none (overrides config)")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
