package schema

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/signadot/xlsx2json/debug"
	"github.com/signadot/xlsx2json/token"
)

type WarningKind int

const (
	// NoMatch: the segment matches none of the declared properties.
	NoMatch WarningKind = iota
	// Ambiguous: the segment matches more than one declared property.
	Ambiguous
)

func (k WarningKind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case Ambiguous:
		return "ambiguous"
	default:
		return "<unknown warning>"
	}
}

// Warning reports a name segment that could not be resolved.
type Warning struct {
	Kind WarningKind
	// Path is the name up to and including the segment.
	Path  string
	Token string
	// Candidates are the matching properties for Ambiguous, and the
	// declared properties for NoMatch.
	Candidates []string
}

// Wildcard reports whether the segment used the '_' wildcard.
func (w Warning) Wildcard() bool {
	return strings.Contains(w.Token, "_")
}

func (w Warning) String() string {
	switch w.Kind {
	case Ambiguous:
		return fmt.Sprintf("%q at %q matches %d properties %q; keeping it as written",
			w.Token, w.Path, len(w.Candidates), w.Candidates)
	default:
		return fmt.Sprintf("%q at %q matches no property; keeping it as written",
			w.Token, w.Path)
	}
}

// KeyPattern returns the anchored pattern a segment stands for: the
// segment itself, with each '_' matching any one character.
func KeyPattern(tok string) *regexp.Regexp {
	return regexp.MustCompile("^" + strings.ReplaceAll(regexp.QuoteMeta(tok), "_", ".") + "$")
}

// MatchKey returns the names tok matches, in the order given.  Whitespace
// around tok is ignored.
func MatchKey(tok string, names []string) []string {
	re := KeyPattern(strings.TrimSpace(tok))
	var res []string
	for _, name := range names {
		if re.MatchString(name) {
			res = append(res, name)
		}
	}
	return res
}

// Resolve returns toks with each field segment replaced by the property
// name it uniquely matches, walking the schema alongside the name.  Index
// segments step into "items".  Once the walk leaves the schema, or a
// segment does not match exactly one property, the remaining segments are
// returned as written.  Resolve on a nil Node returns toks unchanged.
func (n *Node) Resolve(toks []token.Token) ([]token.Token, []Warning) {
	res := slices.Clone(toks)
	var warns []Warning
	cur := n
	for i, tok := range toks {
		if cur == nil {
			break
		}
		if tok.IsIndex() {
			cur = cur.Items
			continue
		}
		if len(cur.Properties) == 0 {
			if debug.Resolve() {
				debug.Logf("resolve %s: no properties at %q\n", token.Join(toks), token.Join(res[:i+1]))
			}
			break
		}
		names := cur.PropertyNames()
		matches := MatchKey(tok.Field, names)
		if debug.Resolve() {
			debug.Logf("resolve %s: %q matches %q\n", token.Join(toks), tok.Field, matches)
		}
		if len(matches) != 1 {
			w := Warning{Kind: NoMatch, Path: token.Join(res[:i+1]), Token: tok.Field, Candidates: names}
			if len(matches) > 1 {
				w.Kind = Ambiguous
				w.Candidates = matches
			}
			warns = append(warns, w)
			break
		}
		res[i].Field = matches[0]
		cur = cur.Property(matches[0])
	}
	return res, warns
}
