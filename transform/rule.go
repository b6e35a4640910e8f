package transform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/shlex"
	"github.com/signadot/xlsx2json/ir"
)

type Kind int

const (
	SplitKind Kind = iota
	FunctionKind
	CommandKind
)

func (k Kind) String() string {
	switch k {
	case SplitKind:
		return "split"
	case FunctionKind:
		return "function"
	case CommandKind:
		return "command"
	default:
		return "<unknown kind>"
	}
}

func kindFromString(s string) (Kind, bool) {
	for _, k := range []Kind{SplitKind, FunctionKind, CommandKind} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// DefaultTimeout bounds a command rule's run time.
const DefaultTimeout = 30 * time.Second

type Rule struct {
	// Path is the dotted path the rule applies to, without the prefix.
	Path string
	Kind Kind
	// Spec is the rule text after "<kind>:".
	Spec string

	// Timeout applies to command rules; zero means DefaultTimeout.
	Timeout time.Duration

	delims  []string
	program *vm.Program
	argv    []string
}

func (r *Rule) String() string {
	return r.Path + "=" + r.Kind.String() + ":" + r.Spec
}

// Parse parses a rule.  A path beginning with prefix (normalized to end in
// '.') has it removed.
func Parse(s, prefix string) (*Rule, error) {
	path, def, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("%w %q: expected <path>=<kind>:<spec>", ErrRule, s)
	}
	path = strings.TrimSpace(path)
	if prefix != "" {
		if !strings.HasSuffix(prefix, ".") {
			prefix += "."
		}
		path = strings.TrimPrefix(path, prefix)
	}
	if path == "" {
		return nil, fmt.Errorf("%w %q: empty path", ErrRule, s)
	}
	ks, spec, ok := strings.Cut(def, ":")
	if !ok {
		return nil, fmt.Errorf("%w %q: expected <kind>:<spec>", ErrRule, s)
	}
	kind, ok := kindFromString(ks)
	if !ok {
		return nil, fmt.Errorf("%w %q: unknown kind %q (want split, function or command)", ErrRule, s, ks)
	}
	r := &Rule{Path: path, Kind: kind, Spec: spec}
	if err := r.setup(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrRule, s, err)
	}
	return r, nil
}

func (r *Rule) setup() error {
	if strings.TrimSpace(r.Spec) == "" {
		return fmt.Errorf("empty %s spec", r.Kind)
	}
	switch r.Kind {
	case SplitKind:
		r.delims = parseDelims(r.Spec)
		for _, d := range r.delims {
			if d == "" {
				return fmt.Errorf("empty delimiter in %q", r.Spec)
			}
		}
	case FunctionKind:
		prg, err := expr.Compile(r.Spec, expr.Env(evalEnv{}))
		if err != nil {
			return err
		}
		r.program = prg
	case CommandKind:
		argv, err := shlex.Split(r.Spec)
		if err != nil {
			return err
		}
		if len(argv) == 0 {
			return fmt.Errorf("empty command")
		}
		r.argv = argv
	}
	return nil
}

// evalEnv is the environment of function rules.  value is untyped so
// that the checker accepts it wherever a cell value may go.
type evalEnv struct {
	Value any `expr:"value"`
}

const escapedPipe = "\x00"

func parseDelims(spec string) []string {
	spec = strings.ReplaceAll(spec, `\|`, escapedPipe)
	parts := strings.Split(spec, "|")
	rep := strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\r`, "\r", escapedPipe, "|")
	for i := range parts {
		parts[i] = rep.Replace(parts[i])
	}
	return parts
}

// Transform applies r to v.  An array is transformed element by element.
// When trim is set, strings in an array produced by a function rule are
// trimmed.
func (r *Rule) Transform(ctx context.Context, v *ir.Node, trim bool) (*ir.Node, error) {
	if v != nil && v.Type == ir.ArrayType {
		res := make([]*ir.Node, len(v.Values))
		for i, e := range v.Values {
			t, err := r.apply(ctx, e, trim)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i+1, err)
			}
			res[i] = t
		}
		return ir.FromSlice(res), nil
	}
	return r.apply(ctx, v, trim)
}

func (r *Rule) apply(ctx context.Context, v *ir.Node, trim bool) (*ir.Node, error) {
	switch r.Kind {
	case SplitKind:
		return Split(v, r.delims), nil
	case FunctionKind:
		return r.eval(v, trim)
	case CommandKind:
		return r.run(ctx, v)
	default:
		return v, nil
	}
}

func (r *Rule) eval(v *ir.Node, trim bool) (*ir.Node, error) {
	out, err := expr.Run(r.program, evalEnv{Value: ir.ToAny(v)})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEval, r.Spec, err)
	}
	res := ir.FromAny(out)
	if trim && res.Type == ir.ArrayType {
		for _, e := range res.Values {
			if e.Type == ir.StringType {
				e.String = strings.TrimSpace(e.String)
			}
		}
	}
	return res, nil
}
