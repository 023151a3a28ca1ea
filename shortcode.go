package zola

import (
	"fmt"
	"regexp"
	"strings"
)

// shortcodeRE matches both shortcode forms: {{ name(args) }} for the inline
// form and {% name(args) %} for the block opening tag. The argument list may
// be empty.
var shortcodeRE = regexp.MustCompile(`\{[{%]\s*([A-Za-z0-9_-]+)\(([^)]*)\)\s*[%}]\}`)

// blockShortcodeEnd is the literal closing marker of the block form,
// compared against the trimmed text event content.
const blockShortcodeEnd = "{% end %}"

// bodyArg is the argument key carrying the accumulated block body.
const bodyArg = "body"

// matchesShortcode reports whether text parses under the shortcode grammar.
func matchesShortcode(text string) bool {
	return shortcodeRE.MatchString(text)
}

// parseShortcode extracts the shortcode name and its argument mapping.
// Values are unquoted; commas inside quoted values do not split arguments.
// The text must already match the grammar.
func parseShortcode(text string) (string, map[string]string) {
	m := shortcodeRE.FindStringSubmatch(text)
	name := m[1]
	args := make(map[string]string)
	for _, pair := range splitArgs(m[2]) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if key != "" {
			args[key] = value
		}
	}
	return name, args
}

// splitArgs splits a comma-separated argument list, keeping quoted commas
// intact.
func splitArgs(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuote := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ',' && !inQuote:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// shortcodeBuilder accumulates the body of an open block shortcode between
// its opening tag and the {% end %} marker. Body lines arrive as separate
// text events because the tokenizer's soft breaks are suppressed while a
// builder is open.
type shortcodeBuilder struct {
	name  string
	args  map[string]string
	lines []string
}

func newShortcodeBuilder(name string, args map[string]string) *shortcodeBuilder {
	return &shortcodeBuilder{name: name, args: args}
}

// appendBody records one text event's raw content verbatim.
func (b *shortcodeBuilder) appendBody(text string) {
	b.lines = append(b.lines, text)
}

// render expands the shortcode through the template engine, passing the
// accumulated body as the "body" argument.
func (b *shortcodeBuilder) render(engine TemplateEngine) (string, error) {
	args := make(map[string]string, len(b.args)+1)
	for k, v := range b.args {
		args[k] = v
	}
	args[bodyArg] = strings.Join(b.lines, "\n")

	out, err := engine.Render(b.name, args)
	if err != nil {
		return "", fmt.Errorf("rendering shortcode %q: %w", b.name, err)
	}
	return out, nil
}
