package xlsx2json

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/signadot/xlsx2json/ir"
	"github.com/signadot/xlsx2json/schema"
	"github.com/signadot/xlsx2json/token"
	"github.com/signadot/xlsx2json/transform"
	"github.com/signadot/xlsx2json/validate"
)

// DefaultPrefix is the name prefix used when none is configured.
const DefaultPrefix = "json."

// Converter builds documents from catalogs.  A Converter is not changed
// by Convert, and the schema and validator it holds are shared by every
// document it builds.
type Converter struct {
	// Prefix selects the entries to convert; a trailing '.' is implied.
	Prefix string

	// Schema, if set, guides name resolution and key order.
	Schema *schema.Node

	// Validator, if set, checks each finished document.
	Validator *validate.Validator

	Rules *transform.Set

	// KeepEmpty disables pruning of empty values.
	KeepEmpty bool

	// Trim strips surrounding whitespace from string values.
	Trim bool

	Log *slog.Logger
}

// Result is a built document.
type Result struct {
	Doc *ir.Node

	// Errors are the validation errors of Doc, sorted.
	Errors []validate.Error
	Stats  Stats
}

// NormalizePrefix returns prefix ending in '.'.
func NormalizePrefix(prefix string) string {
	if prefix == "" {
		return DefaultPrefix
	}
	if !strings.HasSuffix(prefix, ".") {
		return prefix + "."
	}
	return prefix
}

func (c *Converter) log() *slog.Logger {
	if c.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Log
}

// Convert builds the document for cat.  A structural conflict between
// two names aborts the document with an error wrapping ErrDocument;
// resolution and transform problems are logged and the entry is kept as
// written.
func (c *Converter) Convert(ctx context.Context, cat Catalog) (*Result, error) {
	start := time.Now()
	log := c.log()
	res := &Result{}
	entries, err := cat.Entries()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	res.Stats.Entries = len(entries)

	b := ir.NewBuilder()
	b.Warnf = func(format string, args ...any) {
		res.Stats.Warnings++
		log.Warn(fmt.Sprintf(format, args...))
	}
	prefix := NormalizePrefix(c.Prefix)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rest, ok := strings.CutPrefix(e.Name, prefix)
		if !ok {
			res.Stats.Skipped++
			continue
		}
		path, value := c.entry(ctx, res, rest, e.Value)
		if err := b.Insert(path, value); err != nil {
			return nil, fmt.Errorf("%w: name %q: %w", ErrDocument, e.Name, err)
		}
		res.Stats.Inserted++
	}

	doc := b.Root
	if !c.KeepEmpty {
		doc = ir.Prune(doc)
	}
	if doc.IsNull() {
		doc = ir.Object()
	}
	if c.Validator != nil {
		errs, err := c.Validator.Validate(doc)
		if err != nil {
			res.Stats.Warnings++
			log.Warn("document not validated", "error", err)
		}
		res.Errors = errs
	}
	res.Doc = c.Schema.Reorder(doc)
	res.Stats.Duration = time.Since(start)
	return res, nil
}

// entry returns the path and value to insert for the name rest.
func (c *Converter) entry(ctx context.Context, res *Result, rest string, value *ir.Node) ([]token.Token, *ir.Node) {
	log := c.log()
	raw := token.Tokenize(rest)
	path, warns := c.Schema.Resolve(raw)
	for _, w := range warns {
		switch {
		case w.Kind == schema.Ambiguous, w.Wildcard():
			res.Stats.Warnings++
			log.Warn("name segment kept as written", "name", rest, "reason", w.String())
		default:
			log.Debug("name segment kept as written", "name", rest, "reason", w.String())
		}
	}
	if c.Trim {
		value = trimStrings(value)
	}
	m, ok := c.Rules.Lookup(path, raw)
	if !ok {
		return path, value
	}
	out, err := m.Rule.Transform(ctx, value, c.Trim)
	if err != nil {
		res.Stats.Warnings++
		log.Warn("transform failed, keeping value", "name", rest, "rule", m.Rule.String(), "error", err)
		return m.Path, value
	}
	res.Stats.Transformed++
	return m.Path, out
}

func trimStrings(v *ir.Node) *ir.Node {
	if v == nil {
		return v
	}
	switch v.Type {
	case ir.StringType:
		return ir.FromString(strings.TrimSpace(v.String))
	case ir.ArrayType:
		res := make([]*ir.Node, len(v.Values))
		for i, e := range v.Values {
			res[i] = trimStrings(e)
		}
		return ir.FromSlice(res)
	default:
		return v
	}
}
