package ir

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/xlsx2json/token"
)

func TestFlattenRoundTrip(t *testing.T) {
	entries := map[string]any{
		"user.name":            "Ada",
		"user.tags.1":          "x",
		"user.tags.2":          "y",
		"user.address.city":    "London",
		"orders.1.id":          int64(1),
		"orders.1.lines.1.sku": "A",
		"orders.2.id":          int64(2),
		"flag":                 true,
		"ratio":                0.5,
	}
	b := NewBuilder()
	names := make([]string, 0, len(entries))
	for k := range entries {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := b.Insert(token.Tokenize(k), FromAny(entries[k])); err != nil {
			t.Fatalf("insert %s: %v", k, err)
		}
	}
	got := map[string]any{}
	for _, leaf := range Flatten(b.Root) {
		got[token.Join(leaf.Path)] = ToAny(leaf.Value)
	}
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestFlattenRebuild(t *testing.T) {
	in := parseJSON(t, `{"a": [1, {"b": []}, null], "c": {}}`)
	b := NewBuilder()
	for _, leaf := range Flatten(in) {
		if err := b.Insert(leaf.Path, leaf.Value); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := compact(t, b.Root), compact(t, in); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestGetPath(t *testing.T) {
	doc := parseJSON(t, `{"a": [{"b": "x"}, 2]}`)
	n, err := doc.GetPath("a.1.b")
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "x" {
		t.Errorf("got %q", n.String)
	}
	if _, err := doc.GetPath("a.3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := doc.GetPath("a.b"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := doc.GetPath("z"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
