package transform

import (
	"regexp"
	"strings"

	"github.com/signadot/xlsx2json/debug"
	"github.com/signadot/xlsx2json/schema"
	"github.com/signadot/xlsx2json/token"
)

// Set holds the rules of a run, by path.
type Set struct {
	rules    map[string]*Rule
	wildcard []wildcardRule
}

type wildcardRule struct {
	path string
	re   *regexp.Regexp
}

func NewSet() *Set {
	return &Set{rules: map[string]*Rule{}}
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Add registers r at its path and, when sch resolves that path to
// different property names, at the resolved path too.
//
// When a path already has a rule, a function rule replaces a split rule,
// a split rule never replaces a function rule, a rule of the same kind
// is ignored, and any other combination replaces.
func (s *Set) Add(r *Rule, sch *schema.Node) {
	s.register(r.Path, r)
	if sch == nil {
		return
	}
	toks := token.Tokenize(r.Path)
	resolved, _ := sch.Resolve(toks)
	if rp := token.Join(resolved); rp != r.Path {
		rr := *r
		rr.Path = rp
		s.register(rp, &rr)
	}
}

func (s *Set) register(path string, r *Rule) {
	if prev, ok := s.rules[path]; ok && !replaces(prev.Kind, r.Kind) {
		if debug.Rules() {
			debug.Logf("rule %s: keeping %s\n", r, prev)
		}
		return
	}
	if debug.Rules() {
		debug.Logf("rule %s registered at %s\n", r, path)
	}
	if _, ok := s.rules[path]; !ok && strings.Contains(path, "*") {
		s.wildcard = append(s.wildcard, wildcardRule{path: path, re: wildcardPattern(path)})
	}
	s.rules[path] = r
}

func replaces(prev, next Kind) bool {
	switch {
	case prev == next:
		return false
	case prev == FunctionKind && next == SplitKind:
		return false
	default:
		return true
	}
}

func wildcardPattern(path string) *regexp.Regexp {
	return regexp.MustCompile("^" + strings.ReplaceAll(regexp.QuoteMeta(path), `\*`, "[^.]+") + "$")
}

// Match is a rule found for a name, with the path the transformed value
// is to be inserted at.
type Match struct {
	Rule *Rule
	Path []token.Token
}

// Lookup finds the rule for a name given as schema resolved and as raw
// tokens.  It tries the exact resolved path, the exact raw path, the
// parents of the resolved and raw paths, and then wildcard rules in
// registration order.  The match inserts at the resolved path when that
// path has a rule of its own, else at the raw path.
func (s *Set) Lookup(resolved, raw []token.Token) (Match, bool) {
	if s == nil || len(s.rules) == 0 {
		return Match{}, false
	}
	rp, op := token.Join(resolved), token.Join(raw)
	r := s.find(resolved, raw, rp, op)
	if r == nil {
		return Match{}, false
	}
	m := Match{Rule: r, Path: raw}
	if _, ok := s.rules[rp]; ok {
		m.Path = resolved
	}
	if debug.Rules() {
		debug.Logf("rule lookup %s (%s): %s\n", op, rp, r)
	}
	return m, true
}

func (s *Set) find(resolved, raw []token.Token, rp, op string) *Rule {
	if r, ok := s.rules[rp]; ok {
		return r
	}
	if r, ok := s.rules[op]; ok {
		return r
	}
	if len(resolved) > 1 {
		if r, ok := s.rules[token.Join(resolved[:len(resolved)-1])]; ok {
			return r
		}
	}
	if len(raw) > 1 {
		if r, ok := s.rules[token.Join(raw[:len(raw)-1])]; ok {
			return r
		}
	}
	for _, w := range s.wildcard {
		if w.re.MatchString(rp) || w.re.MatchString(op) {
			return s.rules[w.path]
		}
	}
	return nil
}
