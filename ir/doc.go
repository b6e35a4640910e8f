// Package ir provides the in-memory JSON document built from defined names.
//
// # Node Structure
//
// A [Node] is a tagged union: the Type field says which of the other fields
// hold the value.
//
//   - NullType: null value
//   - BoolType: boolean, in Bool
//   - NumberType: number, in Int64 or Float64 (Number as textual fallback)
//   - StringType: string, in String
//   - ArrayType: elements in Values
//   - ObjectType: keys in Fields, values in the matching Values entries
//
// Object keys are kept in insertion order, which is the order they are
// encoded in.
//
// # Building
//
// A [Builder] materializes dotted paths:
//
//	b := ir.NewBuilder()
//	err := b.Insert(token.Tokenize("user.tags.2"), ir.FromString("x"))
//	// b.Root is {"user": {"tags": [null, "x"]}}
//
// A container, once it has content, keeps its kind.  Addressing an array
// with a field, or an object with an index, fails with ErrTypeMismatch.
//
// # Pruning
//
// [Prune] removes empty values: see [IsEmpty] and [IsCompletelyEmpty].
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
