// Package xlsx2json turns a catalog of named values into a JSON
// document.
//
// Each catalog entry's name is a dotted path below a prefix, such as
// "json.customer.address.1.city".  A Converter strips the prefix,
// resolves abbreviated path segments against an optional schema,
// applies transform rules, and inserts the value into a document.  The
// finished document is pruned of empty values, validated, reordered to
// follow the schema and written by an Output.
//
// Numeric path segments are 1-based array indexes.  In a field segment,
// '_' matches any single character of a schema property name, so that
// "user_addr_ss" can stand for "user_address" as long as no other
// property matches.
package xlsx2json
