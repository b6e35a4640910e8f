// Package schema reads the parts of a JSON Schema document that guide
// conversion: the "properties" and "items" keywords, recursively.
//
// # Key Resolution
//
// Defined names cannot always spell a property name, so a name segment
// may abbreviate one: every '_' in the segment stands for exactly one
// unknown character.  [Node.Resolve] walks a tokenized name down the
// schema and replaces each segment that matches exactly one property:
//
//	properties: user_address, user_id
//	"user_addr_ss" → "user_address"
//
// A segment that matches no property, or more than one, is kept as
// written and resolution stops for the rest of the name.  Resolution also
// stops where the schema has no "properties" (for a field) or "items"
// (for an index).
//
// # Ordering
//
// [Node.Reorder] orders object keys as the schema declares them, followed
// by undeclared keys in lexicographic order.
//
// All other keywords are left to the validator; see package validate.
package schema
