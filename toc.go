package zola

// TableOfContents groups an ordered, flat header sequence into a nested
// tree: each header becomes a child of the closest preceding header with a
// smaller level, and a root entry otherwise. Level jumps (h1 straight to h3)
// nest under the last open header rather than inventing intermediate levels.
func TableOfContents(headers []Header) []*Header {
	var toc []*Header
	var open []*Header // chain of headers still accepting children

	for i := range headers {
		node := &Header{
			Level:     headers[i].Level,
			ID:        headers[i].ID,
			Title:     headers[i].Title,
			Permalink: headers[i].Permalink,
		}

		for len(open) > 0 && open[len(open)-1].Level >= node.Level {
			open = open[:len(open)-1]
		}
		if len(open) == 0 {
			toc = append(toc, node)
		} else {
			parent := open[len(open)-1]
			parent.Children = append(parent.Children, node)
		}
		open = append(open, node)
	}
	return toc
}
