package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/xlsx2json/ir"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildBook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Sheet2")
	require.NoError(t, err)
	_, err = f.NewSheet("My Sheet")
	require.NoError(t, err)

	cells := []struct {
		sheet, cell string
		v           any
	}{
		{"Sheet1", "A1", "hello"},
		{"Sheet1", "B1", 42},
		{"Sheet1", "C1", 1.5},
		{"Sheet1", "D1", true},
		{"Sheet1", "E1", 45356},
		{"Sheet1", "A2", "second row"},
		{"Sheet1", "A3", 1},
		{"Sheet1", "B3", 2},
		{"Sheet1", "A4", 3},
		{"Sheet2", "A1", "other sheet"},
		{"My Sheet", "A1", "quoted"},
	}
	for _, c := range cells {
		require.NoError(t, f.SetCellValue(c.sheet, c.cell, c.v))
	}
	style, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "E1", "E1", style))

	names := map[string]string{
		"json.z":      "Sheet2!$A$1",
		"json.b":      "Sheet1!$A$2",
		"json.a":      "Sheet1!$A$1",
		"json.int":    "Sheet1!$B$1",
		"json.float":  "Sheet1!$C$1",
		"json.bool":   "Sheet1!$D$1",
		"json.date":   "Sheet1!$E$1",
		"json.empty":  "Sheet1!$F$1",
		"json.list":   "Sheet1!$A$3:$B$4",
		"json.multi":  "Sheet1!$A$1,Sheet2!$A$1",
		"json.quoted": "'My Sheet'!$A$1",
		"json.gone":   "Missing!$A$1",
	}
	for name, ref := range names {
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: name, RefersTo: ref}))
	}
	p := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(p))
	return p
}

func TestEntries(t *testing.T) {
	r, err := Open(buildBook(t))
	require.NoError(t, err)
	defer r.Close()
	var warnings []string
	r.Warnf = func(format string, args ...any) {
		warnings = append(warnings, format)
	}
	es, err := r.Entries()
	require.NoError(t, err)

	var names []string
	values := map[string]any{}
	for _, e := range es {
		names = append(names, e.Name)
		values[e.Name] = ir.ToAny(e.Value)
	}
	wantNames := []string{
		"json.a", "json.multi", "json.int", "json.float", "json.bool", "json.date", "json.empty",
		"json.b",
		"json.list",
		"json.z",
		"json.quoted",
	}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("order: %s", diff)
	}
	wantValues := map[string]any{
		"json.a":      "hello",
		"json.b":      "second row",
		"json.int":    int64(42),
		"json.float":  1.5,
		"json.bool":   true,
		"json.date":   "2024-03-05T00:00:00",
		"json.empty":  nil,
		"json.list":   []any{int64(1), int64(2), int64(3), nil},
		"json.multi":  []any{"hello", "other sheet"},
		"json.z":      "other sheet",
		"json.quoted": "quoted",
	}
	if diff := cmp.Diff(wantValues, values); diff != "" {
		t.Errorf("values: %s", diff)
	}
	require.Len(t, warnings, 1)
}

func TestOpenError(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.ErrorIs(t, err, ErrOpen)
}

func TestParseRefersTo(t *testing.T) {
	tests := []struct {
		in   string
		want []Area
	}{
		{"Sheet1!$A$1", []Area{{Sheet: "Sheet1", Col: 1, Row: 1, EndCol: 1, EndRow: 1}}},
		{"=Sheet1!$B$2:$A$1", []Area{{Sheet: "Sheet1", Col: 1, Row: 1, EndCol: 2, EndRow: 2}}},
		{"'It''s, here'!C3", []Area{{Sheet: "It's, here", Col: 3, Row: 3, EndCol: 3, EndRow: 3}}},
		{"(S!A1,T!B2:B3)", []Area{
			{Sheet: "S", Col: 1, Row: 1, EndCol: 1, EndRow: 1},
			{Sheet: "T", Col: 2, Row: 2, EndCol: 2, EndRow: 3},
		}},
	}
	for _, test := range tests {
		got, err := ParseRefersTo(test.in)
		require.NoError(t, err, test.in)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: %s", test.in, diff)
		}
	}
	for _, bad := range []string{"", "Sheet1!#REF!", "#REF!", `"constant"`, "Sheet1!$A:$A", "'open!A1", "S!A1:XFD1048576"} {
		_, err := ParseRefersTo(bad)
		if !errors.Is(err, ErrReference) {
			t.Errorf("%q: got %v want ErrReference", bad, err)
		}
	}
}

func TestCells(t *testing.T) {
	cells, err := Area{Sheet: "S", Col: 1, Row: 1, EndCol: 2, EndRow: 2}.Cells()
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A1", "B1", "A2", "B2"}, cells); diff != "" {
		t.Error(diff)
	}
}

func TestIsDateLayout(t *testing.T) {
	tests := map[string]bool{
		"yyyy-mm-dd":          true,
		"h:mm AM/PM":          true,
		"[h]:mm:ss":           true,
		"0.00":                false,
		"General":             false,
		`#,##0 "days"`:        false,
		"[Red]0.00":           false,
		`0.00\d`:              false,
		"[$-409]mmmm d, yyyy": true,
	}
	for layout, want := range tests {
		if got := isDateLayout(layout); got != want {
			t.Errorf("%q: got %v want %v", layout, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "2024-03-05T00:00:00", formatDate(45356))
	require.Equal(t, "2024-03-05T12:00:00", formatDate(45356.5))
	require.Equal(t, "06:00:00", formatDate(0.25))
}
