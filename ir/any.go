package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"
)

// ToAny converts node to the values encoding/json produces when decoding
// into an any, except that integers are int64 and numbers held only as
// text are json.Number.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case StringType:
		return node.String
	case NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		default:
			return json.Number(node.Number)
		}
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f] = ToAny(node.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

// FromAny converts a Go value to a Node.  Maps are converted with sorted
// keys.  Values of types with no JSON counterpart are converted to their
// fmt representation.
func FromAny(v any) *Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case *Node:
		return x
	case bool:
		return FromBool(x)
	case string:
		return FromString(x)
	case int:
		return FromInt(int64(x))
	case int8:
		return FromInt(int64(x))
	case int16:
		return FromInt(int64(x))
	case int32:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x))
	case uint16:
		return FromInt(int64(x))
	case uint32:
		return FromInt(int64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x))
	case float64:
		return FromFloat(x)
	case json.Number:
		return FromNumber(string(x))
	case time.Time:
		return FromString(x.Format(time.RFC3339))
	case []any:
		res := make([]*Node, len(x))
		for i, e := range x {
			res[i] = FromAny(e)
		}
		return FromSlice(res)
	case []string:
		res := make([]*Node, len(x))
		for i, e := range x {
			res[i] = FromString(e)
		}
		return FromSlice(res)
	case []*Node:
		return FromSlice(x)
	case map[string]any:
		res := &Node{Type: ObjectType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.Set(k, FromAny(x[k]))
		}
		return res
	case map[string]*Node:
		return FromMap(x)
	default:
		return FromString(fmt.Sprint(v))
	}
}

// FromNumber parses a JSON number literal, preferring an integer
// representation.
func FromNumber(s string) *Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: s}
}

func fromUint(u uint64) *Node {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}
}
