package ir

import (
	"maps"
	"slices"
)

// Node is a JSON value.  Which fields are meaningful depends on Type.
//
// For ObjectType, Fields[i] is the key of Values[i]; keys are unique and
// their order is the order in which they are encoded.  For ArrayType,
// Values holds the elements.  Numbers are held in Int64 or Float64, with
// Number as a textual fallback for values neither can represent.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an object with the keys of m in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Fields = make([]string, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Fields[i] = key
		res.Values[i] = m[key]
	}
	return res
}

// Object builds an object from alternating key, value arguments.
func Object(kvs ...any) *Node {
	res := &Node{Type: ObjectType}
	for i := 0; i+1 < len(kvs); i += 2 {
		res.Set(kvs[i].(string), kvs[i+1].(*Node))
	}
	return res
}

func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}

// Get returns the value stored under field, or nil if y is not an object
// or has no such field.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set stores v under field, replacing any previous value in place so that
// the key keeps its position.
func (y *Node) Set(field string, v *Node) {
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Fields = nil
	dst.Values = nil
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}
