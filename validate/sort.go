package validate

import (
	"cmp"
	"slices"
	"strconv"
)

// Sort orders errs by path, segment by segment.  Two numeric segments
// compare as numbers, anything else compares as text, and a path sorts
// before the paths it prefixes.  Errors on the same path are ordered by
// message.
func Sort(errs []Error) {
	slices.SortStableFunc(errs, func(a, b Error) int {
		if c := comparePath(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Message, b.Message)
	})
}

func comparePath(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareSegment(a, b string) int {
	ai, aerr := strconv.ParseUint(a, 10, 64)
	bi, berr := strconv.ParseUint(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ai, bi)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
