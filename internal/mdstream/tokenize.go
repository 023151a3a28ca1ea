package mdstream

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Options is the tokenizer capability set.
type Options struct {
	Tables    bool
	Footnotes bool
}

// Tokenize parses source and flattens the document into a finite event
// sequence. The sequence is produced in document order and is consumed in a
// single pass; fenced code blocks yield one text event per source line, and
// inline text fragments the way the parser segments them (a title with inline
// markup arrives as several text events).
func Tokenize(source []byte, opts Options) []Event {
	exts := []goldmark.Extender{extension.Strikethrough}
	if opts.Tables {
		exts = append(exts, extension.Table)
	}
	if opts.Footnotes {
		exts = append(exts, extension.Footnote)
	}
	md := goldmark.New(goldmark.WithExtensions(exts...))

	doc := md.Parser().Parse(text.NewReader(source))

	t := &tokenizer{source: source}
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		t.walk(c)
	}
	return t.events
}

type tokenizer struct {
	source []byte
	events []Event
}

func (t *tokenizer) emit(ev Event) { t.events = append(t.events, ev) }

func (t *tokenizer) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t.walk(c)
	}
}

// wrap emits a Start event, the node's children, then the matching End event.
func (t *tokenizer) wrap(n ast.Node, tag Tag) {
	t.emit(StartEvent(tag))
	t.children(n)
	t.emit(EndEvent(tag))
}

func (t *tokenizer) walk(n ast.Node) {
	switch n := n.(type) {
	case *ast.Paragraph:
		t.wrap(n, Tag{Kind: TagParagraph})
	case *ast.TextBlock:
		// Tight list items carry their text in a TextBlock: no paragraph tags.
		t.children(n)
	case *ast.Heading:
		t.wrap(n, Tag{Kind: TagHeading, Level: n.Level})
	case *ast.Text:
		t.emit(TextEvent(string(n.Segment.Value(t.source))))
		if n.HardLineBreak() {
			t.emit(Event{Kind: KindHardBreak})
		} else if n.SoftLineBreak() {
			t.emit(Event{Kind: KindSoftBreak})
		}
	case *ast.String:
		t.emit(TextEvent(string(n.Value)))
	case *ast.CodeSpan:
		t.wrap(n, Tag{Kind: TagCodeSpan})
	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = string(n.Info.Segment.Value(t.source))
		}
		t.codeBlock(n, info)
	case *ast.CodeBlock:
		t.codeBlock(n, "")
	case *ast.Blockquote:
		t.wrap(n, Tag{Kind: TagBlockQuote})
	case *ast.List:
		tag := Tag{Kind: TagList, Ordered: n.IsOrdered(), Start: n.Start}
		t.wrap(n, tag)
	case *ast.ListItem:
		t.wrap(n, Tag{Kind: TagItem})
	case *ast.ThematicBreak:
		t.emit(Event{Kind: KindRule})
	case *ast.Emphasis:
		kind := TagEmphasis
		if n.Level == 2 {
			kind = TagStrong
		}
		t.wrap(n, Tag{Kind: kind})
	case *east.Strikethrough:
		t.wrap(n, Tag{Kind: TagStrikethrough})
	case *ast.Link:
		tag := Tag{Kind: TagLink, Destination: string(n.Destination), Title: string(n.Title)}
		t.wrap(n, tag)
	case *ast.AutoLink:
		url := string(n.URL(t.source))
		label := string(n.Label(t.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		tag := Tag{Kind: TagLink, Destination: url}
		t.emit(StartEvent(tag))
		t.emit(TextEvent(label))
		t.emit(EndEvent(tag))
	case *ast.Image:
		// Images are self-contained: the alt text is flattened here so the
		// serializer never has to buffer child events.
		tag := Tag{
			Kind:        TagImage,
			Destination: string(n.Destination),
			Title:       string(n.Title),
			Alt:         nodeText(n, t.source),
		}
		t.emit(StartEvent(tag))
		t.emit(EndEvent(tag))
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(t.source))
		}
		t.emit(HTMLEvent(sb.String()))
	case *ast.HTMLBlock:
		var sb strings.Builder
		for i := 0; i < n.Lines().Len(); i++ {
			seg := n.Lines().At(i)
			sb.Write(seg.Value(t.source))
		}
		if n.HasClosure() {
			sb.Write(n.ClosureLine.Value(t.source))
		}
		t.emit(HTMLEvent(sb.String()))
	case *east.Table:
		t.wrap(n, Tag{Kind: TagTable})
	case *east.TableHeader:
		t.tableRow(n, true)
	case *east.TableRow:
		t.tableRow(n, false)
	case *east.FootnoteLink:
		t.emit(HTMLEvent(footnoteRef(n.Index)))
	case *east.FootnoteList:
		t.emit(HTMLEvent("<div class=\"footnotes\">\n<hr />\n<ol>\n"))
		t.children(n)
		t.emit(HTMLEvent("</ol>\n</div>\n"))
	case *east.Footnote:
		t.emit(HTMLEvent(footnoteItemOpen(n.Index)))
		t.children(n)
		t.emit(HTMLEvent("</li>\n"))
	case *east.FootnoteBacklink:
		t.emit(HTMLEvent(footnoteBacklink(n.Index)))
	default:
		// Unknown containers contribute their children; unknown leaves are
		// dropped rather than guessed at.
		if n.HasChildren() {
			t.children(n)
		}
	}
}

// codeBlock emits the block boundaries with one text event per source line.
func (t *tokenizer) codeBlock(n ast.Node, info string) {
	tag := Tag{Kind: TagCodeBlock, Info: info}
	t.emit(StartEvent(tag))
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		t.emit(TextEvent(string(seg.Value(t.source))))
	}
	t.emit(EndEvent(tag))
}

// tableRow emits a row; header rows are wrapped in the table-head tag and
// mark their cells so the serializer picks <th> over <td>.
func (t *tokenizer) tableRow(n ast.Node, header bool) {
	rowKind := TagTableRow
	if header {
		rowKind = TagTableHead
	}
	t.emit(StartEvent(Tag{Kind: rowKind}))
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cell := Tag{Kind: TagTableCell, HeaderCell: header}
		t.emit(StartEvent(cell))
		t.children(c)
		t.emit(EndEvent(cell))
	}
	t.emit(EndEvent(Tag{Kind: rowKind}))
}

// nodeText collects the literal text under n, ignoring markup.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	var visit func(ast.Node)
	visit = func(n ast.Node) {
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
		case *ast.String:
			sb.Write(n.Value)
		default:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				visit(c)
			}
		}
	}
	visit(n)
	return sb.String()
}
