// Package mdstream flattens a parsed markdown document into a stream of
// structural events and serializes a (possibly rewritten) event stream back
// into HTML. Callers rewrite events in between: any event may be replaced by
// an HTML event whose text is injected verbatim into the output.
package mdstream

// Kind discriminates the event variants.
type Kind int

// Event kinds.
const (
	KindText Kind = iota // a run of literal text
	KindStart            // opening boundary of a tagged block or span
	KindEnd              // closing boundary of a tagged block or span
	KindHTML             // raw HTML, injected verbatim by the serializer
	KindSoftBreak        // line break that renders as a newline
	KindHardBreak        // line break that renders as <br />
	KindRule             // thematic break
)

// TagKind identifies the construct a Start/End event delimits.
type TagKind int

// Tag kinds.
const (
	TagParagraph TagKind = iota
	TagHeading
	TagCodeBlock
	TagCodeSpan
	TagBlockQuote
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
)

// Tag carries the per-construct payload of a Start or End event. Only the
// fields relevant to the Kind are set; End events repeat the Start payload so
// the serializer can close lists and cells without extra bookkeeping.
type Tag struct {
	Kind        TagKind
	Level       int    // TagHeading: 1-6
	Info        string // TagCodeBlock: full fence info string
	Destination string // TagLink, TagImage
	Title       string // TagLink, TagImage
	Alt         string // TagImage: alt text collected from child nodes
	Ordered     bool   // TagList
	Start       int    // TagList: first ordinal of an ordered list
	HeaderCell  bool   // TagTableCell: cell belongs to the table head
}

// Event is one unit of a tokenized document's shape. Events are plain values
// and may be copied or replaced freely.
type Event struct {
	Kind Kind
	Text string // KindText and KindHTML payload
	Tag  Tag    // KindStart and KindEnd payload
}

// TextEvent returns a literal text event.
func TextEvent(s string) Event { return Event{Kind: KindText, Text: s} }

// HTMLEvent returns a raw HTML event serialized verbatim.
func HTMLEvent(s string) Event { return Event{Kind: KindHTML, Text: s} }

// StartEvent returns an opening boundary event for tag.
func StartEvent(tag Tag) Event { return Event{Kind: KindStart, Tag: tag} }

// EndEvent returns a closing boundary event for tag.
func EndEvent(tag Tag) Event { return Event{Kind: KindEnd, Tag: tag} }
