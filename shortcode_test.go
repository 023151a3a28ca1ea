package zola

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestMatchesShortcode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "inline no args", input: "{{ hello() }}", want: true},
		{name: "inline with args", input: `{{ hello(name="World") }}`, want: true},
		{name: "block opening", input: `{% quote(author="Vincent") %}`, want: true},
		{name: "tight spacing", input: "{{hello()}}", want: true},
		{name: "hyphenated name", input: "{{ my-widget() }}", want: true},
		{name: "no parens", input: "{{ hello }}", want: false},
		{name: "plain braces", input: "{ hello() }", want: false},
		{name: "end marker", input: "{% end %}", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := matchesShortcode(tt.input); got != tt.want {
				t.Errorf("matchesShortcode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseShortcode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs map[string]string
	}{
		{
			name:     "no args",
			input:    "{{ hello() }}",
			wantName: "hello",
			wantArgs: map[string]string{},
		},
		{
			name:     "single arg",
			input:    `{{ hello(name="World") }}`,
			wantName: "hello",
			wantArgs: map[string]string{"name": "World"},
		},
		{
			name:     "several args",
			input:    `{% quote(author="Vincent", year="2024") %}`,
			wantName: "quote",
			wantArgs: map[string]string{"author": "Vincent", "year": "2024"},
		},
		{
			name:     "quoted comma kept intact",
			input:    `{{ cite(title="One, Two", page="3") }}`,
			wantName: "cite",
			wantArgs: map[string]string{"title": "One, Two", "page": "3"},
		},
		{
			name:     "unquoted value",
			input:    "{{ gist(id=abc123) }}",
			wantName: "gist",
			wantArgs: map[string]string{"id": "abc123"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, args := parseShortcode(tt.input)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: `a="1"`, want: []string{`a="1"`}},
		{name: "two", input: `a="1", b="2"`, want: []string{`a="1"`, ` b="2"`}},
		{name: "quoted comma", input: `a="x, y", b="2"`, want: []string{`a="x, y"`, ` b="2"`}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := splitArgs(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitArgs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestShortcodeBuilder(t *testing.T) {
	t.Parallel()

	t.Run("body joined with newlines", func(t *testing.T) {
		t.Parallel()

		b := newShortcodeBuilder("quote", map[string]string{"author": "Vincent"})
		b.appendBody("line one")
		b.appendBody("line two")

		engine := &stubEngine{}
		out, err := b.render(engine)
		if err != nil {
			t.Fatalf("render() unexpected error: %v", err)
		}
		want := "<div class=\"sc-quote\" data-author=\"Vincent\">line one\nline two</div>"
		if out != want {
			t.Errorf("render() = %q, want %q", out, want)
		}
	})

	t.Run("engine error wrapped with shortcode name", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("kaput")
		b := newShortcodeBuilder("boom", nil)
		engine := &stubEngine{fail: map[string]error{"boom": cause}}

		_, err := b.render(engine)
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
		if want := `rendering shortcode "boom"`; err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("error %v should mention %q", err, want)
		}
	})

	t.Run("builder args not mutated by render", func(t *testing.T) {
		t.Parallel()

		args := map[string]string{"k": "v"}
		b := newShortcodeBuilder("sc", args)
		b.appendBody("body text")
		if _, err := b.render(&stubEngine{}); err != nil {
			t.Fatalf("render() unexpected error: %v", err)
		}
		if _, ok := args["body"]; ok {
			t.Error("render must not inject the body into the caller's map")
		}
	})
}
