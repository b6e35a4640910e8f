package ir

import "strings"

// IsEmpty reports whether node carries no value of its own: null, a
// string that is blank after trimming whitespace, or an empty container.
func IsEmpty(node *Node) bool {
	if node == nil {
		return true
	}
	switch node.Type {
	case NullType:
		return true
	case StringType:
		return strings.TrimSpace(node.String) == ""
	case ObjectType, ArrayType:
		return len(node.Values) == 0
	default:
		return false
	}
}

// IsCompletelyEmpty is the recursive form of IsEmpty: a container is
// completely empty when every value in it is.
func IsCompletelyEmpty(node *Node) bool {
	if node == nil {
		return true
	}
	switch node.Type {
	case NullType:
		return true
	case StringType:
		return strings.TrimSpace(node.String) == ""
	case ObjectType, ArrayType:
		for _, v := range node.Values {
			if !IsCompletelyEmpty(v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
