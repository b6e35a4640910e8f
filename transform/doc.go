// Package transform rewrites cell values on their way into a document.
//
// A rule is written
//
//	<path>=<kind>:<spec>
//
// where path is a dotted name, optionally carrying the name prefix, in
// which '*' stands for any run of characters within one segment.  The
// kinds are
//
//	split:<d1>|<d2>|...   split a string by d1, each part by d2, and so on
//	function:<expr>       evaluate an expr-lang expression over value
//	command:<argv>        run a command with the value on stdin
//
// In split delimiters, `\|` is a literal pipe and `\n`, `\t` and `\r`
// are the usual control characters.
//
// A command's output is read as JSON if it parses, as a list of its
// non-blank lines if it has several, and as a string otherwise.
package transform
