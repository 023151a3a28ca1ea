package zola

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/kianmeng/zola/internal/assets"
)

// TemplateEngine expands a named template with a key-value argument mapping.
// Shortcodes render through the template matching their name; header anchor
// fragments render through the "anchor-link" template with an "id" argument.
type TemplateEngine interface {
	Render(name string, args map[string]string) (string, error)
}

// TemplateSet is a TemplateEngine backed by text/template. Shortcode
// templates emit HTML fragments on purpose, so no automatic escaping is
// applied to argument values.
type TemplateSet struct {
	root *template.Template
}

// NewTemplateSet creates a set preloaded with the embedded defaults
// (currently the anchor-link fragment). Panics if an embedded template fails
// to parse, which is a programmer error.
func NewTemplateSet() *TemplateSet {
	ts := &TemplateSet{root: template.New("zola")}
	for _, name := range assets.TemplateNames() {
		content, err := assets.LoadTemplate(name)
		if err != nil {
			panic("loading embedded template " + name + ": " + err.Error())
		}
		if err := ts.Add(name, content); err != nil {
			panic("parsing embedded template " + name + ": " + err.Error())
		}
	}
	return ts
}

// Add parses text as the template called name, replacing any previous
// definition under that name.
func (ts *TemplateSet) Add(name, text string) error {
	if _, err := ts.root.New(name).Parse(text); err != nil {
		return fmt.Errorf("parsing template %q: %w", name, err)
	}
	return nil
}

// LoadDir registers every *.html file in dir as a template named after its
// base name without the extension. Files override embedded defaults of the
// same name.
func (ts *TemplateSet) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading template directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path) // #nosec G304 -- template dir is caller-provided
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		if err := ts.Add(name, string(content)); err != nil {
			return err
		}
	}
	return nil
}

// Render executes the named template with args and returns the output.
func (ts *TemplateSet) Render(name string, args map[string]string) (string, error) {
	t := ts.root.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, args); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateRender, name, err)
	}
	return sb.String(), nil
}

// Compile-time interface check.
var _ TemplateEngine = (*TemplateSet)(nil)
