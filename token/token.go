package token

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	FieldKind Kind = iota
	IndexKind
)

func (k Kind) String() string {
	switch k {
	case FieldKind:
		return "Field"
	case IndexKind:
		return "Index"
	default:
		return "<unknown kind>"
	}
}

// Token is one segment of a dotted path.
//
// For IndexKind tokens, Index holds the 1-based position and Field holds the
// digits as written, so that Field always round trips the original name.
type Token struct {
	Kind  Kind
	Field string
	Index int
}

func FromField(f string) Token {
	return Token{Kind: FieldKind, Field: f}
}

func FromIndex(i int) Token {
	return Token{Kind: IndexKind, Field: strconv.Itoa(i), Index: i}
}

func (t Token) String() string {
	return t.Field
}

func (t Token) IsIndex() bool {
	return t.Kind == IndexKind
}

// IsIndex reports whether s consists of one or more ASCII digits.
func IsIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseIndex returns the 1-based index written in s.
func ParseIndex(s string) (int, error) {
	if !IsIndex(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotIndex, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrNotIndex, s, err)
	}
	return n, nil
}

// Tokenize splits name on '.'.  Digit-only segments become IndexKind
// tokens.  A digit run too large for an int gets Index 0, which no
// consumer accepts as a position.
func Tokenize(name string) []Token {
	parts := strings.Split(name, ".")
	res := make([]Token, len(parts))
	for i, p := range parts {
		if !IsIndex(p) {
			res[i] = FromField(p)
			continue
		}
		n, _ := ParseIndex(p)
		res[i] = Token{Kind: IndexKind, Field: p, Index: n}
	}
	return res
}

// Join renders toks back into a dotted name.
func Join(toks []Token) string {
	var b strings.Builder
	for i := range toks {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(toks[i].Field)
	}
	return b.String()
}

// Strings returns the raw segment strings of toks.
func Strings(toks []Token) []string {
	res := make([]string, len(toks))
	for i := range toks {
		res[i] = toks[i].Field
	}
	return res
}
