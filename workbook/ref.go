package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area is a rectangle of cells on one sheet, with 1-based inclusive
// coordinates.
type Area struct {
	Sheet          string
	Col, Row       int
	EndCol, EndRow int
}

// Cells returns the cell names of a, row by row.
func (a Area) Cells() ([]string, error) {
	res := make([]string, 0, (a.EndCol-a.Col+1)*(a.EndRow-a.Row+1))
	for r := a.Row; r <= a.EndRow; r++ {
		for c := a.Col; c <= a.EndCol; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			res = append(res, cell)
		}
	}
	return res, nil
}

func (a Area) Len() int {
	return (a.EndCol - a.Col + 1) * (a.EndRow - a.Row + 1)
}

// maxCells bounds the size of a single name.
const maxCells = 1 << 20

// ParseRefersTo parses the target of a defined name, such as
// "Sheet1!$A$1:$B$2" or "'My Sheet'!$A$1,Other!$C$3".  Formulas,
// constants, whole rows or columns, and broken (#REF!) targets are
// rejected with ErrReference.
func ParseRefersTo(s string) ([]Area, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "=")
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrReference)
	}
	parts, err := splitAreas(s)
	if err != nil {
		return nil, err
	}
	res := make([]Area, 0, len(parts))
	total := 0
	for _, part := range parts {
		a, err := parseArea(part)
		if err != nil {
			return nil, err
		}
		total += a.Len()
		if total > maxCells {
			return nil, fmt.Errorf("%w: %q spans more than %d cells", ErrReference, s, maxCells)
		}
		res = append(res, a)
	}
	return res, nil
}

// splitAreas splits on commas outside quoted sheet names, removing an
// enclosing pair of parentheses.
func splitAreas(s string) ([]string, error) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	var res []string
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case ',':
			if !quoted {
				res = append(res, s[start:i])
				start = i + 1
			}
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unterminated sheet name in %q", ErrReference, s)
	}
	return append(res, s[start:]), nil
}

func parseArea(s string) (Area, error) {
	s = strings.TrimSpace(s)
	bang := strings.LastIndexByte(s, '!')
	if bang <= 0 {
		return Area{}, fmt.Errorf("%w: %q has no sheet", ErrReference, s)
	}
	sheet := s[:bang]
	if strings.HasPrefix(sheet, "'") {
		if len(sheet) < 2 || !strings.HasSuffix(sheet, "'") {
			return Area{}, fmt.Errorf("%w: bad sheet name in %q", ErrReference, s)
		}
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	ref := strings.ReplaceAll(s[bang+1:], "$", "")
	if strings.Contains(ref, "#REF!") || ref == "" {
		return Area{}, fmt.Errorf("%w: %q is broken", ErrReference, s)
	}
	from, to, isRange := strings.Cut(ref, ":")
	if !isRange {
		to = from
	}
	c0, r0, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return Area{}, fmt.Errorf("%w: %q: %w", ErrReference, s, err)
	}
	c1, r1, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return Area{}, fmt.Errorf("%w: %q: %w", ErrReference, s, err)
	}
	return Area{
		Sheet:  sheet,
		Col:    min(c0, c1),
		Row:    min(r0, r1),
		EndCol: max(c0, c1),
		EndRow: max(r0, r1),
	}, nil
}
