package workbook

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/xlsx2json/ir"
	"github.com/xuri/excelize/v2"
)

// cellValue types the content of one cell.  Empty cells are null,
// booleans are bools, numbers are integers when integral and floats
// otherwise, date formatted numbers are ISO-8601 strings and everything
// else is a string.
func (r *Reader) cellValue(sheet, cell string) (*ir.Node, error) {
	raw, err := r.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return ir.Null(), nil
	}
	ct, err := r.f.GetCellType(sheet, cell)
	if err != nil {
		return nil, err
	}
	switch ct {
	case excelize.CellTypeBool:
		return ir.FromBool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return ir.FromString(raw), nil
		}
		isDate, err := r.isDateStyled(sheet, cell)
		if err != nil {
			return nil, err
		}
		if isDate {
			return ir.FromString(formatDate(f)), nil
		}
		return number(f), nil
	default:
		return ir.FromString(raw), nil
	}
}

func number(f float64) *ir.Node {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return ir.FromInt(int64(f))
	}
	return ir.FromFloat(f)
}

// formatDate renders an Excel serial date as an ISO-8601 date and time,
// or as a time of day when the serial is below one day.
func formatDate(serial float64) string {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return strconv.FormatFloat(serial, 'f', -1, 64)
	}
	t = t.Round(time.Millisecond)
	if serial < 1 {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02T15:04:05")
}

func (r *Reader) isDateStyled(sheet, cell string) (bool, error) {
	id, err := r.f.GetCellStyle(sheet, cell)
	if err != nil || id == 0 {
		return false, err
	}
	if v, ok := r.dateStyles[id]; ok {
		return v, nil
	}
	st, err := r.f.GetStyle(id)
	if err != nil {
		return false, err
	}
	v := isDateFormat(st.NumFmt)
	if st.CustomNumFmt != nil {
		v = isDateLayout(*st.CustomNumFmt)
	}
	r.dateStyles[id] = v
	return v, nil
}

func isDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 45 && id <= 47:
		return true
	default:
		return false
	}
}

var (
	quotedRe  = regexp.MustCompile(`"[^"]*"|\\.`)
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
	elapsedRe = regexp.MustCompile(`(?i)\[(h+|m+|s+)\]`)
)

// isDateLayout reports whether a custom number format shows a date or
// time.
func isDateLayout(layout string) bool {
	layout = quotedRe.ReplaceAllString(layout, "")
	if elapsedRe.MatchString(layout) {
		return true
	}
	layout = strings.ToLower(bracketRe.ReplaceAllString(layout, ""))
	if strings.Contains(layout, "general") {
		return false
	}
	return strings.ContainsAny(layout, "ydhms")
}
