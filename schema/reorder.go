package schema

import (
	"slices"

	"github.com/signadot/xlsx2json/ir"
)

// Reorder returns doc with object keys in schema order: declared
// properties first, in declaration order, then the remaining keys sorted
// lexicographically.  Declared values are reordered against their
// property schema; undeclared ones are left as they are.  Array elements
// are reordered against "items" and keep their positions.  Values that do
// not fit the schema shape are returned unchanged.
func (n *Node) Reorder(doc *ir.Node) *ir.Node {
	if n == nil || doc == nil {
		return doc
	}
	switch doc.Type {
	case ir.ObjectType:
		if n.Properties == nil {
			return doc
		}
		res := &ir.Node{Type: ir.ObjectType}
		for _, p := range n.Properties {
			v := doc.Get(p.Name)
			if v == nil {
				continue
			}
			res.Set(p.Name, p.Schema.Reorder(v))
		}
		var rest []string
		for _, f := range doc.Fields {
			if n.Property(f) == nil {
				rest = append(rest, f)
			}
		}
		slices.Sort(rest)
		for _, f := range rest {
			res.Set(f, doc.Get(f))
		}
		return res
	case ir.ArrayType:
		if n.Items == nil {
			return doc
		}
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(doc.Values))}
		for i, v := range doc.Values {
			res.Values[i] = n.Items.Reorder(v)
		}
		return res
	default:
		return doc
	}
}
