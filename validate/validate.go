package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/signadot/xlsx2json/ir"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const resourceURL = "mem:///schema.json"

// Validator is a compiled schema.  It is safe to share between documents.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// New compiles the JSON Schema document in data.
func New(data []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	if err := c.AddResource(resourceURL, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	sch, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return &Validator{
		schema:  sch,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Validate returns the violations of doc, sorted with Sort.  A valid
// document yields no errors.  The returned error is non nil only when
// doc could not be checked at all.
func (v *Validator) Validate(doc *ir.Node) ([]Error, error) {
	d, err := json.Marshal(ir.ToAny(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstance, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstance, err)
	}
	err = v.schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("%w: %w", ErrInstance, err)
	}
	var res []Error
	v.collect(&res, ve)
	Sort(res)
	return res, nil
}

// collect appends the leaves of the cause tree: the inner nodes only
// summarize their causes.
func (v *Validator) collect(dst *[]Error, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*dst = append(*dst, Error{
			Path:    append([]string(nil), ve.InstanceLocation...),
			Message: ve.ErrorKind.LocalizedString(v.printer),
		})
		return
	}
	for _, c := range ve.Causes {
		v.collect(dst, c)
	}
}

// Error is one violation.  Path holds the instance location segments
// as the validator reports them, so array positions are 0-based.
type Error struct {
	Path    []string
	Message string
}

// RootPath is how the document root is written in a log line.
const RootPath = "(root)"

func (e Error) PathString() string {
	if len(e.Path) == 0 {
		return RootPath
	}
	return strings.Join(e.Path, ".")
}

func (e Error) String() string {
	return e.PathString() + ": " + e.Message
}
