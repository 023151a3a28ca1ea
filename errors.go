package zola

import "errors"

// Sentinel errors for rendering operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrTemplateRender   = errors.New("template rendering failed")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoTemplateEngine = errors.New("no template engine configured")
	ErrLinkNotFound     = errors.New("relative link not found")
	ErrHighlight        = errors.New("code highlighting failed")

	// Context validation errors.
	ErrInvalidInsertAnchor = errors.New("invalid anchor insertion policy")
)
