package ir

import (
	"encoding/json"
	"testing"

	"github.com/signadot/xlsx2json/token"
)

// compact renders node as compact JSON with object keys sorted.
func compact(t *testing.T, node *Node) string {
	t.Helper()
	d, err := json.Marshal(ToAny(node))
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

// parseJSON builds a node from JSON text with keys sorted.
func parseJSON(t *testing.T, s string) *Node {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return FromAny(v)
}

func build(t *testing.T, kvs ...any) (*Node, error) {
	t.Helper()
	b := NewBuilder()
	for i := 0; i+1 < len(kvs); i += 2 {
		if err := b.Insert(token.Tokenize(kvs[i].(string)), FromAny(kvs[i+1])); err != nil {
			return b.Root, err
		}
	}
	return b.Root, nil
}
