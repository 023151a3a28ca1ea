package zola

import (
	"fmt"
	"strings"
)

// InsertAnchor selects where the anchor link fragment is placed relative to
// a header's title text.
type InsertAnchor int

// Anchor insertion policies.
const (
	AnchorNone InsertAnchor = iota // no anchor fragment, id attribute only
	AnchorLeft                     // anchor fragment before the title
	AnchorRight                    // anchor fragment after the title
)

// String returns the lowercase policy name.
func (a InsertAnchor) String() string {
	switch a {
	case AnchorNone:
		return "none"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	}
	return fmt.Sprintf("InsertAnchor(%d)", int(a))
}

// ParseInsertAnchor converts a config string to a policy (case-insensitive).
// The empty string means AnchorNone.
func ParseInsertAnchor(s string) (InsertAnchor, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return AnchorNone, nil
	case "left":
		return AnchorLeft, nil
	case "right":
		return AnchorRight, nil
	}
	return AnchorNone, fmt.Errorf("%w: %q (must be left, right, or none)", ErrInvalidInsertAnchor, s)
}

// DefaultHighlightTheme is used when Context.HighlightTheme is empty.
const DefaultHighlightTheme = "monokai"

// anchorLinkTemplate is the template name rendered for header anchor
// fragments. A default is embedded; callers may override it by registering
// a template under the same name.
const anchorLinkTemplate = "anchor-link"

// Context is the read-only configuration for one rendering call.
// The zero value renders with highlighting off, no anchors, and no
// template engine (documents containing shortcodes then fail with
// ErrNoTemplateEngine).
type Context struct {
	// HighlightCode enables syntax highlighting for fenced code blocks.
	// Highlighting only activates when the raw source also contains a
	// fenced-code marker, so plain documents never pay the setup cost.
	HighlightCode bool

	// HighlightTheme is a chroma style name. Unknown or empty names fall
	// back to DefaultHighlightTheme.
	HighlightTheme string

	// CurrentPermalink is the absolute permalink of the document being
	// rendered; header permalinks are derived from it.
	CurrentPermalink string

	// InsertAnchor is the anchor placement policy for headers.
	InsertAnchor InsertAnchor

	// Permalinks maps relative document paths (without the leading "./")
	// to resolved absolute permalinks.
	Permalinks map[string]string

	// Templates renders shortcodes and the anchor-link fragment.
	Templates TemplateEngine

	// TakenAnchors seeds the anchor registry with identifiers already
	// claimed elsewhere on the page, so several rendered fragments can
	// share one id namespace.
	TakenAnchors []string

	// DisableTables and DisableFootnotes switch off the corresponding
	// tokenizer capabilities; both are enabled by default.
	DisableTables    bool
	DisableFootnotes bool
}

// Validate checks that the context is well-formed.
func (c *Context) Validate() error {
	switch c.InsertAnchor {
	case AnchorNone, AnchorLeft, AnchorRight:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidInsertAnchor, int(c.InsertAnchor))
	}
	return nil
}

// theme returns the effective highlight theme name.
func (c *Context) theme() string {
	if c.HighlightTheme == "" {
		return DefaultHighlightTheme
	}
	return c.HighlightTheme
}

// engine returns the configured template engine, or a stub that fails every
// render so a shortcode in a document without an engine surfaces as a
// captured template error instead of a panic.
func (c *Context) engine() TemplateEngine {
	if c.Templates != nil {
		return c.Templates
	}
	return noEngine{}
}

type noEngine struct{}

func (noEngine) Render(name string, _ map[string]string) (string, error) {
	return "", fmt.Errorf("%w: cannot render %q", ErrNoTemplateEngine, name)
}

// Header is one finalized table-of-contents entry. Children are the headers
// nested under it by level.
type Header struct {
	Level     int       `json:"level"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Permalink string    `json:"permalink"`
	Children  []*Header `json:"children,omitempty"`
}

// Rendered is the successful outcome of one rendering call.
type Rendered struct {
	// HTML is the final document body.
	HTML string
	// TOC is the nested table of contents built from the document headers.
	TOC []*Header
}
