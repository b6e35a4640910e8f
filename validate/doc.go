// Package validate checks built documents against a JSON Schema and
// formats the violations as a sorted, line oriented log.
//
// Schemas without a "$schema" keyword are treated as Draft 7.
package validate
