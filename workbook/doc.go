// Package workbook reads the defined names of an .xlsx workbook as a
// catalog of (name, value) entries.
//
// A name bound to a single cell yields that cell's value; a name bound to
// several cells yields an array of their values, row by row, with areas
// of a multi-area name concatenated in declaration order.
//
// Entries are ordered by where their first cell lives: sheet order, then
// row, then column, then name.  Later entries win when two names address
// the same path, so this order is what makes output reproducible.
package workbook
