package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "single field",
			input: "a",
			want:  []Token{FromField("a")},
		},
		{
			name:  "fields and indexes",
			input: "order.items.2.sku",
			want: []Token{
				FromField("order"),
				FromField("items"),
				FromIndex(2),
				FromField("sku"),
			},
		},
		{
			name:  "leading index",
			input: "3",
			want:  []Token{FromIndex(3)},
		},
		{
			name:  "leading zeros keep their spelling",
			input: "a.007",
			want:  []Token{FromField("a"), {Kind: IndexKind, Field: "007", Index: 7}},
		},
		{
			name:  "empty segment is a field",
			input: "a..b",
			want:  []Token{FromField("a"), FromField(""), FromField("b")},
		},
		{
			name:  "empty name",
			input: "",
			want:  []Token{FromField("")},
		},
		{
			name:  "mixed digits are a field",
			input: "1a.a1",
			want:  []Token{FromField("1a"), FromField("a1")},
		},
		{
			name:  "non ascii digits are a field",
			input: "١٢",
			want:  []Token{FromField("١٢")},
		},
		{
			name:  "overflowing index",
			input: "99999999999999999999999",
			want:  []Token{{Kind: IndexKind, Field: "99999999999999999999999"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if j := Join(got); j != tt.input {
				t.Errorf("Join(Tokenize(%q)) = %q", tt.input, j)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	n, err := ParseIndex("42")
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Errorf("got %d want 42", n)
	}
	if _, err := ParseIndex("4a"); !errors.Is(err, ErrNotIndex) {
		t.Errorf("expected ErrNotIndex, got %v", err)
	}
	if _, err := ParseIndex(""); !errors.Is(err, ErrNotIndex) {
		t.Errorf("expected ErrNotIndex, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	if FieldKind.String() != "Field" || IndexKind.String() != "Index" {
		t.Errorf("unexpected kind names %s %s", FieldKind, IndexKind)
	}
	if got := Strings([]Token{FromField("a"), FromIndex(1)}); !cmp.Equal(got, []string{"a", "1"}) {
		t.Errorf("Strings = %v", got)
	}
}
