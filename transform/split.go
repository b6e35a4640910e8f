package transform

import (
	"strings"

	"github.com/signadot/xlsx2json/ir"
)

// Split splits a string into nested arrays, one level per delimiter.
// Parts are trimmed and blank parts dropped.  A blank string yields an
// empty array; values that are not strings are returned unchanged.
func Split(v *ir.Node, delims []string) *ir.Node {
	if v == nil || v.Type != ir.StringType || len(delims) == 0 {
		return v
	}
	if strings.TrimSpace(v.String) == "" {
		return ir.FromSlice(nil)
	}
	return split(v.String, delims)
}

func split(s string, delims []string) *ir.Node {
	if len(delims) == 0 {
		return ir.FromString(strings.TrimSpace(s))
	}
	res := []*ir.Node{}
	for _, part := range strings.Split(s, delims[0]) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		res = append(res, split(part, delims[1:]))
	}
	return ir.FromSlice(res)
}
