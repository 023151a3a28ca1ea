package zola

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// fencedCodeMarker is the literal whose presence in the raw source enables
// highlighting for the whole document. A triple backtick in prose is a
// false positive we accept to avoid scanning every document's parse tree.
const fencedCodeMarker = "```"

// codeHighlighter holds the highlighting state for exactly one code block:
// the selected language lexer, the theme binding, and the formatter. It is
// created on a code-block-start event and discarded on code-block-end.
type codeHighlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// newCodeHighlighter selects a language grammar from the first
// whitespace-delimited token of the fence info string, falling back to the
// plain-text lexer, and binds the named theme. Unknown theme names fall back
// to chroma's default style; the lookup never fails.
func newCodeHighlighter(info, theme string) *codeHighlighter {
	lang := firstToken(info)
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &codeHighlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(theme),
		formatter: chromahtml.New(chromahtml.PreventSurroundingPre(true)),
	}
}

// snippetStart opens the theme-colored wrapper markup for the block.
func (h *codeHighlighter) snippetStart() string {
	bg := h.style.Get(chroma.Background)
	return fmt.Sprintf("<pre style=\"background-color:%s\">", bg.Background.String())
}

// snippetEnd closes the themed wrapper.
func (h *codeHighlighter) snippetEnd() string {
	return "</pre>"
}

// highlightLine converts one line of code-block text into themed HTML.
// Each line is tokenized independently; per-block state lives in the lexer
// and theme binding held by the receiver.
func (h *codeHighlighter) highlightLine(line string) (string, error) {
	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return sb.String(), nil
}

// firstToken returns the first whitespace-delimited token of an info string.
func firstToken(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
