package ir

import (
	"fmt"

	"github.com/signadot/xlsx2json/debug"
	"github.com/signadot/xlsx2json/token"
)

// MaxIndex bounds the 1-based array index a path may address, so that a
// single mistyped name cannot allocate an enormous array.
const MaxIndex = 1 << 16

// ValueField is the key under which a scalar held by an object key is kept
// when a later path needs to descend through it as an object.  A scalar
// array element is never relocated.
const ValueField = "__value__"

// Builder materializes dotted paths into a document.
//
// The document starts out as null and takes the kind of the first token
// inserted: an Index makes it an array, a Field an object.
type Builder struct {
	Root *Node

	// Warnf, if set, receives non fatal conditions found while inserting.
	Warnf func(format string, args ...any)
}

func NewBuilder() *Builder {
	return &Builder{Root: Null()}
}

// Insert places value at toks, creating intermediate objects and arrays as
// needed.  Arrays are grown with nulls to reach an index.  A value already
// at the final position is overwritten.
//
// Insert returns an error wrapping ErrTypeMismatch when a token would
// descend into a non empty container of the other kind or through a
// scalar array element, and ErrBadIndex
// for an index of 0 or above MaxIndex.
func (b *Builder) Insert(toks []token.Token, value *Node) error {
	if len(toks) == 0 {
		return ErrEmptyPath
	}
	if b.Root == nil {
		b.Root = Null()
	}
	if value == nil {
		value = Null()
	}
	if debug.Insert() {
		debug.Logf("insert %s = %v\n", token.Join(toks), ToAny(value))
	}
	return b.insert(b.Root, toks, 0, value)
}

func (b *Builder) insert(c *Node, toks []token.Token, i int, value *Node) error {
	tok := toks[i]
	if err := b.commit(c, toks, i); err != nil {
		return err
	}
	last := i == len(toks)-1
	var slot *Node
	if tok.IsIndex() {
		if tok.Index < 1 || tok.Index > MaxIndex {
			return fmt.Errorf("%w %q at %q: must be between 1 and %d",
				ErrBadIndex, tok.Field, token.Join(toks[:i+1]), MaxIndex)
		}
		for len(c.Values) < tok.Index {
			c.Values = append(c.Values, Null())
		}
		if last {
			c.Values[tok.Index-1] = value
			return nil
		}
		slot = c.Values[tok.Index-1]
	} else {
		if last {
			c.Set(tok.Field, value)
			return nil
		}
		slot = c.Get(tok.Field)
		if slot == nil {
			slot = Null()
			c.Set(tok.Field, slot)
		}
	}
	return b.insert(slot, toks, i+1, value)
}

// commit makes c a container of the kind toks[i] addresses.
func (b *Builder) commit(c *Node, toks []token.Token, i int) error {
	want := ObjectType
	if toks[i].IsIndex() {
		want = ArrayType
	}
	switch {
	case c.Type == want:
		return nil
	case c.Type == NullType:
		c.Type = want
		return nil
	case !c.Type.IsLeaf() && len(c.Values) == 0:
		if debug.Insert() {
			debug.Logf("insert: empty %s at %q becomes %s\n", c.Type, token.Join(toks[:i]), want)
		}
		c.Type = want
		c.Fields = nil
		c.Values = nil
		return nil
	case c.Type.IsLeaf() && want == ObjectType && i > 0 && !toks[i-1].IsIndex():
		prev := c.Clone()
		if b.Warnf != nil {
			b.Warnf("path %q descends through a %s; keeping it under %q",
				token.Join(toks[:i]), prev.Type, ValueField)
		}
		*c = Node{Type: ObjectType}
		c.Set(ValueField, prev)
		return nil
	}
	return fmt.Errorf("%w at %q: %s token %q needs %s, found %s",
		ErrTypeMismatch, token.Join(toks[:i+1]), toks[i].Kind, toks[i].Field, want, c.Type)
}
