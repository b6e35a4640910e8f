package xlsx2json

import "github.com/signadot/xlsx2json/ir"

// Entry is a named value: a scalar for a single cell, an array for a
// range.
type Entry struct {
	Name  string
	Value *ir.Node
}

// Catalog enumerates the named values of one input.  Entries are
// inserted in the order returned, so later entries overwrite earlier ones
// at the same path.
type Catalog interface {
	Entries() ([]Entry, error)
}

// EntryList is a Catalog over a fixed list.
type EntryList []Entry

func (l EntryList) Entries() ([]Entry, error) {
	return l, nil
}
