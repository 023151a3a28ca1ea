package zola

import (
	"reflect"
	"testing"
)

func h(level int, id string) Header {
	return Header{Level: level, ID: id, Title: id, Permalink: "#" + id}
}

func TestTableOfContents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []Header
		check   func(t *testing.T, toc []*Header)
	}{
		{
			name:    "empty",
			headers: nil,
			check: func(t *testing.T, toc []*Header) {
				if toc != nil {
					t.Errorf("expected nil TOC, got %+v", toc)
				}
			},
		},
		{
			name:    "flat same level",
			headers: []Header{h(1, "a"), h(1, "b"), h(1, "c")},
			check: func(t *testing.T, toc []*Header) {
				if len(toc) != 3 {
					t.Fatalf("expected 3 roots, got %d", len(toc))
				}
				for _, node := range toc {
					if len(node.Children) != 0 {
						t.Errorf("node %q should have no children", node.ID)
					}
				}
			},
		},
		{
			name:    "simple nesting",
			headers: []Header{h(1, "a"), h(2, "b"), h(3, "c"), h(2, "d")},
			check: func(t *testing.T, toc []*Header) {
				if len(toc) != 1 {
					t.Fatalf("expected 1 root, got %d", len(toc))
				}
				root := toc[0]
				if got := ids(root.Children); !reflect.DeepEqual(got, []string{"b", "d"}) {
					t.Fatalf("unexpected children of root: %v", got)
				}
				if got := ids(root.Children[0].Children); !reflect.DeepEqual(got, []string{"c"}) {
					t.Errorf("unexpected children of b: %v", got)
				}
			},
		},
		{
			name:    "level jump nests under last open header",
			headers: []Header{h(1, "a"), h(3, "b")},
			check: func(t *testing.T, toc []*Header) {
				if len(toc) != 1 || len(toc[0].Children) != 1 {
					t.Fatalf("unexpected shape: %+v", toc)
				}
				if toc[0].Children[0].ID != "b" {
					t.Errorf("expected b under a, got %+v", toc[0].Children[0])
				}
			},
		},
		{
			name:    "document starting below h1",
			headers: []Header{h(2, "a"), h(1, "b"), h(2, "c")},
			check: func(t *testing.T, toc []*Header) {
				if got := ids(toc); !reflect.DeepEqual(got, []string{"a", "b"}) {
					t.Fatalf("unexpected roots: %v", got)
				}
				if got := ids(toc[1].Children); !reflect.DeepEqual(got, []string{"c"}) {
					t.Errorf("unexpected children of b: %v", got)
				}
			},
		},
		{
			name:    "level drop closes the chain",
			headers: []Header{h(1, "a"), h(2, "b"), h(3, "c"), h(1, "d")},
			check: func(t *testing.T, toc []*Header) {
				if got := ids(toc); !reflect.DeepEqual(got, []string{"a", "d"}) {
					t.Fatalf("unexpected roots: %v", got)
				}
				if len(toc[1].Children) != 0 {
					t.Errorf("d should have no children: %+v", toc[1].Children)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t, TableOfContents(tt.headers))
		})
	}
}

func ids(nodes []*Header) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}
