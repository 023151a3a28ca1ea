package zola

import (
	"fmt"
	"strings"
)

// relativeLinkPrefix marks link targets that resolve through the permalink
// table.
const relativeLinkPrefix = "./"

// resolveInternalLink rewrites a relative link target into its absolute
// permalink, preserving any fragment: "./other.md#usage" resolves the
// "other.md" entry and re-appends "#usage".
func resolveInternalLink(link string, permalinks map[string]string) (string, error) {
	target := strings.TrimPrefix(link, relativeLinkPrefix)
	target, fragment, hasFragment := strings.Cut(target, "#")

	permalink, ok := permalinks[target]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLinkNotFound, link)
	}
	if hasFragment {
		return permalink + "#" + fragment, nil
	}
	return permalink, nil
}
