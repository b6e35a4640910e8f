// Package token splits defined names into dotted path tokens.
//
// A name such as "order.items.2.sku" becomes the tokens
//
//	Field("order") Field("items") Index(2) Field("sku")
//
// [Tokenize] never fails: there is no escaping mechanism for a literal '.'
// inside a key, and an empty segment is kept as an empty Field.
//
// Indexes are 1-based, as they are written in spreadsheet names.
package token
