package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

type doc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := Unmarshal([]byte("name: hello\ncount: 3\n"), &d); err != nil {
			t.Fatalf("Unmarshal() unexpected error: %v", err)
		}
		if d.Name != "hello" || d.Count != 3 {
			t.Errorf("unexpected result: %+v", d)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := Unmarshal([]byte("name: hello\nextra: 1\n"), &d); err != nil {
			t.Errorf("Unmarshal() should ignore unknown fields, got %v", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := Unmarshal(nil, &d); !errors.Is(err, ErrEmptyData) {
			t.Errorf("expected ErrEmptyData, got %v", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("expected ErrNilDestination, got %v", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var d doc
		data := bytes.Repeat([]byte("a"), MaxInputSize+1)
		if err := Unmarshal(data, &d); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("expected ErrInputTooLarge, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := Unmarshal([]byte("name: [unclosed"), &d); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := UnmarshalStrict([]byte("name: hello\n"), &d); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if d.Name != "hello" {
			t.Errorf("unexpected result: %+v", d)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := UnmarshalStrict([]byte("name: hello\nextra: 1\n"), &d); err == nil {
			t.Error("expected an unknown-field error")
		}
	})
}
