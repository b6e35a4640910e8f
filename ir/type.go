package ir

// Type is the JSON type of a Node.
type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

var typeNames = [...]string{
	NullType:   "null",
	NumberType: "number",
	StringType: "string",
	BoolType:   "boolean",
	ObjectType: "object",
	ArrayType:  "array",
}

// String returns the JSON Schema name of t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

// Types returns all types in declaration order.
func Types() []Type {
	return []Type{NullType, NumberType, StringType, BoolType, ObjectType, ArrayType}
}

// IsLeaf reports whether values of t hold no children.
func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}
