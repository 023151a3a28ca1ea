// Package zola renders markdown documents to HTML in a single streaming
// pass, applying four cross-cutting enrichments along the way: syntax
// highlighted code blocks, a shortcode templating mini-language, automatic
// header anchors with a generated table of contents, and resolution of
// relative cross-document links.
//
// The core consumes structural events produced by a markdown tokenizer and
// rewrites them one at a time; it does not parse markdown syntax itself.
//
// Basic usage:
//
//	ts := zola.NewTemplateSet()
//	res, err := zola.Render(content, &zola.Context{
//		HighlightCode:    true,
//		CurrentPermalink: "https://example.com/posts/hello/",
//		InsertAnchor:     zola.AnchorRight,
//		Permalinks:       map[string]string{"other.md": "/other/"},
//		Templates:        ts,
//	})
package zola
