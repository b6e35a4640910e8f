package workbook

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/signadot/xlsx2json"
	"github.com/signadot/xlsx2json/debug"
	"github.com/signadot/xlsx2json/ir"
	"github.com/xuri/excelize/v2"
)

// Reader is a catalog over the defined names of one workbook.
type Reader struct {
	Path string

	// Warnf, if set, receives names that are skipped.
	Warnf func(format string, args ...any)

	f          *excelize.File
	sheets     map[string]int
	dateStyles map[int]bool
}

var _ xlsx2json.Catalog = (*Reader)(nil)

// Open opens the workbook at path.  Cached values are read as stored, no
// formula is evaluated.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	r := &Reader{
		Path:       path,
		f:          f,
		sheets:     map[string]int{},
		dateStyles: map[int]bool{},
	}
	for i, name := range f.GetSheetList() {
		r.sheets[name] = i
	}
	return r, nil
}

func (r *Reader) Close() error {
	return r.f.Close()
}

func (r *Reader) warnf(format string, args ...any) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
	}
}

type located struct {
	entry           xlsx2json.Entry
	sheet, row, col int
}

// Entries returns every defined name bound to cells, with its value.
// Names whose target cannot be read as cells are skipped with a warning.
func (r *Reader) Entries() ([]xlsx2json.Entry, error) {
	var all []located
	for _, dn := range r.f.GetDefinedName() {
		areas, err := ParseRefersTo(dn.RefersTo)
		if err != nil {
			r.warnf("skipping name %q in %s: %v", dn.Name, r.Path, err)
			continue
		}
		loc, err := r.read(dn.Name, areas)
		if err != nil {
			r.warnf("skipping name %q in %s: %v", dn.Name, r.Path, err)
			continue
		}
		all = append(all, loc)
	}
	slices.SortStableFunc(all, func(a, b located) int {
		return cmp.Or(
			cmp.Compare(a.sheet, b.sheet),
			cmp.Compare(a.row, b.row),
			cmp.Compare(a.col, b.col),
			cmp.Compare(a.entry.Name, b.entry.Name),
		)
	})
	res := make([]xlsx2json.Entry, len(all))
	for i := range all {
		res[i] = all[i].entry
		if debug.Catalog() {
			debug.Logf("catalog %s: %s = %v\n", r.Path, res[i].Name, ir.ToAny(res[i].Value))
		}
	}
	return res, nil
}

func (r *Reader) read(name string, areas []Area) (located, error) {
	var values []*ir.Node
	for _, a := range areas {
		if _, ok := r.sheets[a.Sheet]; !ok {
			return located{}, fmt.Errorf("%w: no sheet %q", ErrReference, a.Sheet)
		}
		cells, err := a.Cells()
		if err != nil {
			return located{}, err
		}
		for _, cell := range cells {
			v, err := r.cellValue(a.Sheet, cell)
			if err != nil {
				return located{}, fmt.Errorf("%s!%s: %w", a.Sheet, cell, err)
			}
			values = append(values, v)
		}
	}
	loc := located{
		sheet: r.sheets[areas[0].Sheet],
		row:   areas[0].Row,
		col:   areas[0].Col,
	}
	loc.entry.Name = name
	if len(values) == 1 {
		loc.entry.Value = values[0]
	} else {
		loc.entry.Value = ir.FromSlice(values)
	}
	return loc, nil
}
