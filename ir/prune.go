package ir

import "github.com/signadot/xlsx2json/debug"

// Prune returns node with empty values removed.
//
// Object keys whose pruned value IsEmpty are dropped.  Array elements are
// pruned but kept unless they are IsCompletelyEmpty, so an element that
// still carries some information keeps its place; removed elements close
// the gap.  A container left with nothing becomes null, as does a blank
// string.  Prune does not modify node.
func Prune(node *Node) *Node {
	if node == nil {
		return Null()
	}
	switch node.Type {
	case ObjectType:
		res := &Node{Type: ObjectType}
		for i, f := range node.Fields {
			v := Prune(node.Values[i])
			if IsEmpty(v) {
				if debug.Prune() {
					debug.Logf("prune: drop field %q\n", f)
				}
				continue
			}
			res.Fields = append(res.Fields, f)
			res.Values = append(res.Values, v)
		}
		if len(res.Fields) == 0 {
			return Null()
		}
		return res
	case ArrayType:
		res := &Node{Type: ArrayType}
		for i, v := range node.Values {
			v = Prune(v)
			if IsCompletelyEmpty(v) {
				if debug.Prune() {
					debug.Logf("prune: drop element %d\n", i)
				}
				continue
			}
			res.Values = append(res.Values, v)
		}
		if len(res.Values) == 0 {
			return Null()
		}
		return res
	default:
		if IsEmpty(node) {
			return Null()
		}
		return node.Clone()
	}
}
