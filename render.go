package zola

import (
	"fmt"
	"html"
	"strings"

	"github.com/kianmeng/zola/internal/mdstream"
)

// Render converts a markdown document into final HTML plus a table of
// contents, applying highlighting, shortcodes, header anchors, and relative
// link resolution in one pass over the tokenizer's event stream.
//
// The pass never short-circuits: every event is consumed even after an
// error, so the stream is always fully drained. The first error captured
// (template rendering, link resolution) fails the whole call and no result
// is returned.
func Render(content string, rc *Context) (*Rendered, error) {
	if content == "" {
		return nil, ErrEmptyMarkdown
	}
	if rc == nil {
		rc = &Context{}
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}

	events := mdstream.Tokenize([]byte(content), mdstream.Options{
		Tables:    !rc.DisableTables,
		Footnotes: !rc.DisableFootnotes,
	})

	st := newRenderState(rc, rc.HighlightCode && strings.Contains(content, fencedCodeMarker))

	rewritten := make([]mdstream.Event, 0, len(events))
	for _, ev := range events {
		rewritten = append(rewritten, st.transform(ev))
	}

	if st.err != nil {
		return nil, st.err
	}

	// Suppressed shortcode paragraphs leave empty <p></p> pairs behind.
	out := strings.ReplaceAll(mdstream.Serialize(rewritten), "<p></p>", "")

	return &Rendered{HTML: out, TOC: TableOfContents(st.headers)}, nil
}

// renderState is the single hidden state machine behind the event rewrite:
// the mode flags, the optional per-construct state cells, and the collected
// outputs. It is owned exclusively by one Render call.
type renderState struct {
	rc *Context

	// highlight is the document-level heuristic decision, fixed up front.
	highlight bool

	inCodeBlock    bool
	inHeader       bool
	anchorInserted bool // guards multi-fragment titles
	addedShortcode bool // the current paragraph's tags were suppressed

	hl      *codeHighlighter  // non-nil only inside a fenced code block
	sc      *shortcodeBuilder // non-nil only inside a block shortcode
	pending *pendingHeader    // non-nil only inside a header

	anchors []string // identifiers assigned so far, plus any seeded ones
	headers []Header

	err error // first error wins; later ones are dropped
}

func newRenderState(rc *Context, highlight bool) *renderState {
	return &renderState{
		rc:        rc,
		highlight: highlight,
		anchors:   append([]string(nil), rc.TakenAnchors...),
	}
}

// fail records err unless an earlier error already claimed the slot.
func (s *renderState) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// transform rewrites one structural event, or passes it through.
func (s *renderState) transform(ev mdstream.Event) mdstream.Event {
	switch ev.Kind {
	case mdstream.KindText:
		return s.transformText(ev)
	case mdstream.KindStart:
		return s.transformStart(ev)
	case mdstream.KindEnd:
		return s.transformEnd(ev)
	case mdstream.KindSoftBreak:
		// Soft breaks inside an open shortcode body would leave stray
		// line-break artifacts in the accumulated text.
		if s.sc != nil {
			return mdstream.HTMLEvent("")
		}
		return ev
	}
	return ev
}

func (s *renderState) transformText(ev mdstream.Event) mdstream.Event {
	text := ev.Text

	// Inside a highlighted code block every line goes through the
	// highlighter and comes back as themed markup.
	if s.hl != nil {
		highlighted, err := s.hl.highlightLine(text)
		if err != nil {
			s.fail(err)
			return mdstream.HTMLEvent("")
		}
		return mdstream.HTMLEvent(highlighted)
	}

	// Code blocks and spans render their text literally; shortcode-looking
	// content in them stays untouched.
	if s.inCodeBlock {
		return ev
	}

	// Inline shortcode: expands immediately. The tokenizer has opened a
	// paragraph around this text, so the injected HTML is preceded by an
	// early paragraph close and the matching end event is suppressed.
	if s.sc == nil && strings.HasPrefix(text, "{{") && strings.HasSuffix(text, "}}") && matchesShortcode(text) {
		name, args := parseShortcode(text)
		s.addedShortcode = true
		out, err := s.rc.engine().Render(name, args)
		if err != nil {
			s.fail(fmt.Errorf("rendering shortcode %q: %w", name, err))
			return mdstream.HTMLEvent("")
		}
		return mdstream.HTMLEvent("</p>" + out)
	}

	// Block shortcode opening tag: opens the builder and renders as empty
	// text. {%...%}-delimited fragments that don't parse as a shortcode
	// are swallowed too, not rendered.
	if s.sc == nil && strings.HasPrefix(text, "{%") && strings.HasSuffix(text, "%}") {
		if matchesShortcode(text) {
			name, args := parseShortcode(text)
			s.sc = newShortcodeBuilder(name, args)
		}
		return mdstream.TextEvent("")
	}

	// While a builder is open, text is either the closing marker or body.
	// Body text is never re-interpreted as a new shortcode invocation.
	if s.sc != nil {
		if strings.TrimSpace(text) == blockShortcodeEnd {
			s.addedShortcode = true
			out, err := s.sc.render(s.rc.engine())
			s.sc = nil
			if err != nil {
				s.fail(err)
				return mdstream.HTMLEvent("")
			}
			return mdstream.HTMLEvent("</p>" + out)
		}
		s.sc.appendBody(text)
		return mdstream.HTMLEvent("")
	}

	if s.inHeader {
		return s.transformHeaderText(text, ev)
	}

	return ev
}

// transformHeaderText assigns the header's anchor on the first text
// fragment; later fragments of a multi-fragment title pass through.
func (s *renderState) transformHeaderText(text string, ev mdstream.Event) mdstream.Event {
	if s.anchorInserted || s.pending == nil {
		return ev
	}

	id := uniqueAnchor(s.anchors, slugify(text))
	s.anchors = append(s.anchors, id)

	anchorLink := ""
	if s.rc.InsertAnchor != AnchorNone {
		out, err := s.rc.engine().Render(anchorLinkTemplate, map[string]string{"id": id})
		if err != nil {
			s.fail(fmt.Errorf("rendering anchor link: %w", err))
		} else {
			anchorLink = strings.TrimSuffix(out, "\n")
		}
	}

	s.headers = append(s.headers, Header{
		Level:     s.pending.level,
		ID:        id,
		Title:     text,
		Permalink: s.rc.CurrentPermalink + "#" + id,
	})
	s.pending = nil
	s.anchorInserted = true

	// The header-start event only emitted "<h2 "; the id attribute and the
	// anchor fragment are injected here, once the title is known.
	escaped := html.EscapeString(text)
	switch s.rc.InsertAnchor {
	case AnchorLeft:
		return mdstream.HTMLEvent(fmt.Sprintf("id=%q>%s%s", id, anchorLink, escaped))
	case AnchorRight:
		return mdstream.HTMLEvent(fmt.Sprintf("id=%q>%s%s", id, escaped, anchorLink))
	default:
		return mdstream.HTMLEvent(fmt.Sprintf("id=%q>%s", id, escaped))
	}
}

func (s *renderState) transformStart(ev mdstream.Event) mdstream.Event {
	switch ev.Tag.Kind {
	case mdstream.TagCodeBlock:
		s.inCodeBlock = true
		if !s.highlight {
			return mdstream.HTMLEvent("<pre><code>")
		}
		s.hl = newCodeHighlighter(ev.Tag.Info, s.rc.theme())
		return mdstream.HTMLEvent(s.hl.snippetStart())

	case mdstream.TagCodeSpan:
		// Inline code only suppresses shortcode detection; it never
		// activates the highlighter.
		s.inCodeBlock = true
		return ev

	case mdstream.TagHeading:
		s.inHeader = true
		s.pending = &pendingHeader{level: ev.Tag.Level}
		// Emit the bare tag name; the id attribute follows with the title.
		return mdstream.HTMLEvent(fmt.Sprintf("<h%d ", ev.Tag.Level))

	case mdstream.TagLink:
		// Header titles must not contain embedded anchor tags.
		if s.inHeader {
			return mdstream.HTMLEvent("")
		}
		if strings.HasPrefix(ev.Tag.Destination, relativeLinkPrefix) {
			resolved, err := resolveInternalLink(ev.Tag.Destination, s.rc.Permalinks)
			if err != nil {
				s.fail(err)
				return mdstream.HTMLEvent("")
			}
			ev.Tag.Destination = resolved
			return ev
		}
		return ev
	}
	return ev
}

func (s *renderState) transformEnd(ev mdstream.Event) mdstream.Event {
	switch ev.Tag.Kind {
	case mdstream.TagCodeBlock:
		s.inCodeBlock = false
		if !s.highlight {
			return mdstream.HTMLEvent("</code></pre>\n")
		}
		end := s.hl.snippetEnd()
		s.hl = nil
		return mdstream.HTMLEvent(end)

	case mdstream.TagCodeSpan:
		s.inCodeBlock = false
		return ev

	case mdstream.TagHeading:
		s.inHeader = false
		s.anchorInserted = false
		s.pending = nil
		return ev

	case mdstream.TagLink:
		if s.inHeader {
			return mdstream.HTMLEvent("")
		}
		return ev

	case mdstream.TagParagraph:
		// A shortcode already closed this paragraph early; closing it
		// again would unbalance the output.
		if s.addedShortcode {
			s.addedShortcode = false
			return mdstream.HTMLEvent("")
		}
		return ev
	}
	return ev
}
