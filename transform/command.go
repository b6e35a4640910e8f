package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/signadot/xlsx2json/ir"
)

func (r *Rule) run(ctx context.Context, v *ir.Node) (*ir.Node, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	in, err := stdin(v)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, r.argv[0], r.argv[1:]...)
	cmd.Stdin = strings.NewReader(in)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrCommand, r.Spec, err)
		}
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrCommand, r.Spec, err, msg)
	}
	return ParseOutput(stdout.String()), nil
}

// stdin renders v as command input: strings as they are, null as
// nothing, and anything else as JSON.
func stdin(v *ir.Node) (string, error) {
	switch {
	case v == nil || v.Type == ir.NullType:
		return "", nil
	case v.Type == ir.StringType:
		return v.String, nil
	default:
		d, err := json.Marshal(ir.ToAny(v))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCommand, err)
		}
		return string(d), nil
	}
}

// ParseOutput interprets command output: JSON when it parses, the
// trimmed non-blank lines when there are several, else the trimmed text.
func ParseOutput(out string) *ir.Node {
	out = strings.TrimSpace(out)
	dec := json.NewDecoder(strings.NewReader(out))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err == nil && !dec.More() {
		if _, err := dec.Token(); err != nil {
			return ir.FromAny(v)
		}
	}
	if !strings.Contains(out, "\n") {
		return ir.FromString(out)
	}
	res := []*ir.Node{}
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			res = append(res, ir.FromString(ln))
		}
	}
	return ir.FromSlice(res)
}
