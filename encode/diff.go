package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/xlsx2json/ir"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff from "from" to "to", listing only the changed
// lines, prefixed with "-" or "+".  The result is empty when the texts are
// equal.  If colors is non nil, removed and added lines are colored.
func Diff(from, to []byte, colors *Colors) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(from), string(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		var mark string
		attr := InsertColor
		switch d.Type {
		case diffpatch.DiffEqual:
			continue
		case diffpatch.DiffDelete:
			mark = "-"
			attr = DeleteColor
		case diffpatch.DiffInsert:
			mark = "+"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			ln = mark + strings.TrimSuffix(ln, "\n")
			if colors != nil {
				ln = colors.Color(ir.NullType, attr, ln)
			}
			buf.WriteString(ln + "\n")
		}
	}
	return buf.String()
}

// Changes returns the JSON merge patch (RFC 7386) taking from to to, or
// nil when the two documents are equal as JSON.  When either document is
// not an object the patch is all of to.
func Changes(from, to []byte) ([]byte, error) {
	if !json.Valid(from) || !json.Valid(to) {
		return nil, fmt.Errorf("%w: comparing invalid JSON", ErrEncoding)
	}
	if jsonpatch.Equal(from, to) {
		return nil, nil
	}
	if !isObject(from) || !isObject(to) {
		return bytes.TrimSpace(to), nil
	}
	p, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return p, nil
}

func isObject(d []byte) bool {
	d = bytes.TrimSpace(d)
	return len(d) != 0 && d[0] == '{'
}
