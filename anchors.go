package zola

import (
	"fmt"
	"slices"

	"github.com/gosimple/slug"
)

// slugify derives a URL-safe identifier from arbitrary header text
// (lowercase, hyphenated).
func slugify(s string) string {
	return slug.Make(s)
}

// uniqueAnchor resolves name against the identifiers already taken in this
// document. A free name is used as-is; otherwise a numeric suffix is
// appended, choosing the smallest unused one: example, example-1, example-2.
// The loop is bounded by the number of headers in the document.
func uniqueAnchor(taken []string, name string) string {
	if !slices.Contains(taken, name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", name, i)
		if !slices.Contains(taken, candidate) {
			return candidate
		}
	}
}

// pendingHeader is the scratch record for a header whose title text has not
// arrived yet. A nil pendingHeader means no header is in progress.
type pendingHeader struct {
	level int
}
