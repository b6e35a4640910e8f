package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/xlsx2json/token"
)

// Leaf is a value together with the dotted path that addresses it.
type Leaf struct {
	Path  []token.Token
	Value *Node
}

// Flatten lists the leaves of node in document order, with 1-based array
// indexes, so that inserting every leaf into a new Builder rebuilds node.
// Empty containers below the root are reported as leaves.
func Flatten(node *Node) []Leaf {
	return flatten(nil, nil, node)
}

func flatten(dst []Leaf, prefix []token.Token, node *Node) []Leaf {
	if node == nil {
		return dst
	}
	if node.Type.IsLeaf() || (len(node.Values) == 0 && len(prefix) != 0) {
		return append(dst, Leaf{Path: prefix, Value: node})
	}
	for i, v := range node.Values {
		var tok token.Token
		if node.Type == ArrayType {
			tok = token.FromIndex(i + 1)
		} else {
			tok = token.FromField(node.Fields[i])
		}
		path := make([]token.Token, len(prefix), len(prefix)+1)
		copy(path, prefix)
		dst = flatten(dst, append(path, tok), v)
	}
	return dst
}

// GetPath returns the node at the dotted path p, using the same 1-based
// indexes as defined names.
func (y *Node) GetPath(p string) (*Node, error) {
	res := y
	toks := token.Tokenize(p)
	for i, tok := range toks {
		if tok.IsIndex() {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w at %q: expected %s, got %s",
					ErrTypeMismatch, token.Join(toks[:i+1]), ArrayType, res.Type)
			}
			if tok.Index < 1 || tok.Index > len(res.Values) {
				return nil, fmt.Errorf("%w: index %s out of bounds (len %d)",
					ErrNotFound, strconv.Quote(tok.Field), len(res.Values))
			}
			res = res.Values[tok.Index-1]
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("%w at %q: expected %s, got %s",
				ErrTypeMismatch, token.Join(toks[:i+1]), ObjectType, res.Type)
		}
		next := res.Get(tok.Field)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, token.Join(toks[:i+1]))
		}
		res = next
	}
	return res, nil
}
