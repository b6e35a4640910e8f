// Package encode writes documents as indented JSON.
//
// # Usage
//
//	node := ir.Object("name", ir.FromString("alice"), "age", ir.FromInt(30))
//	err := encode.Encode(node, os.Stdout)
//
//	// with terminal colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Output uses a 2 space indent by default, keeps non-ASCII and HTML
// characters as they are, and ends with a newline.
//
// Diff and Changes compare two encoded documents, for reporting what a
// new run changed in an existing output file.
package encode
