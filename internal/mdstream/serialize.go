package mdstream

import (
	"fmt"
	"html"
	"strings"
)

// Serialize concatenates an event sequence into an HTML string. Untouched
// events render via default rules; HTML events are injected verbatim.
func Serialize(events []Event) string {
	var sb strings.Builder
	for _, ev := range events {
		switch ev.Kind {
		case KindText:
			sb.WriteString(html.EscapeString(ev.Text))
		case KindHTML:
			sb.WriteString(ev.Text)
		case KindSoftBreak:
			sb.WriteString("\n")
		case KindHardBreak:
			sb.WriteString("<br />\n")
		case KindRule:
			sb.WriteString("<hr />\n")
		case KindStart:
			sb.WriteString(openTag(ev.Tag))
		case KindEnd:
			sb.WriteString(closeTag(ev.Tag))
		}
	}
	return sb.String()
}

func openTag(tag Tag) string {
	switch tag.Kind {
	case TagParagraph:
		return "<p>"
	case TagHeading:
		return fmt.Sprintf("<h%d>", tag.Level)
	case TagCodeBlock:
		return "<pre><code>"
	case TagCodeSpan:
		return "<code>"
	case TagBlockQuote:
		return "<blockquote>\n"
	case TagList:
		if !tag.Ordered {
			return "<ul>\n"
		}
		if tag.Start != 1 {
			return fmt.Sprintf("<ol start=\"%d\">\n", tag.Start)
		}
		return "<ol>\n"
	case TagItem:
		return "<li>"
	case TagEmphasis:
		return "<em>"
	case TagStrong:
		return "<strong>"
	case TagStrikethrough:
		return "<del>"
	case TagLink:
		if tag.Title != "" {
			return fmt.Sprintf("<a href=\"%s\" title=\"%s\">",
				html.EscapeString(tag.Destination), html.EscapeString(tag.Title))
		}
		return fmt.Sprintf("<a href=\"%s\">", html.EscapeString(tag.Destination))
	case TagImage:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<img src=\"%s\" alt=\"%s\"",
			html.EscapeString(tag.Destination), html.EscapeString(tag.Alt))
		if tag.Title != "" {
			fmt.Fprintf(&sb, " title=\"%s\"", html.EscapeString(tag.Title))
		}
		sb.WriteString(" />")
		return sb.String()
	case TagTable:
		return "<table>\n"
	case TagTableHead:
		return "<thead>\n<tr>"
	case TagTableRow:
		return "<tr>"
	case TagTableCell:
		if tag.HeaderCell {
			return "<th>"
		}
		return "<td>"
	}
	return ""
}

func closeTag(tag Tag) string {
	switch tag.Kind {
	case TagParagraph:
		return "</p>\n"
	case TagHeading:
		return fmt.Sprintf("</h%d>\n", tag.Level)
	case TagCodeBlock:
		return "</code></pre>\n"
	case TagCodeSpan:
		return "</code>"
	case TagBlockQuote:
		return "</blockquote>\n"
	case TagList:
		if tag.Ordered {
			return "</ol>\n"
		}
		return "</ul>\n"
	case TagItem:
		return "</li>\n"
	case TagEmphasis:
		return "</em>"
	case TagStrong:
		return "</strong>"
	case TagStrikethrough:
		return "</del>"
	case TagLink:
		return "</a>"
	case TagImage:
		return ""
	case TagTable:
		return "</tbody>\n</table>\n"
	case TagTableHead:
		return "</tr>\n</thead>\n<tbody>\n"
	case TagTableRow:
		return "</tr>\n"
	case TagTableCell:
		if tag.HeaderCell {
			return "</th>"
		}
		return "</td>"
	}
	return ""
}

func footnoteRef(index int) string {
	return fmt.Sprintf("<sup id=\"fnref:%d\"><a href=\"#fn:%d\">%d</a></sup>", index, index, index)
}

func footnoteItemOpen(index int) string {
	return fmt.Sprintf("<li id=\"fn:%d\">", index)
}

func footnoteBacklink(index int) string {
	return fmt.Sprintf("<a href=\"#fnref:%d\" class=\"footnote-backref\">&#8617;</a>", index)
}
