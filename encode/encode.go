package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/xlsx2json/ir"
)

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// MustString encodes node, panicking on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return encodeNull(w, es)
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, quote(node.String)))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return encodeNull(w, es)
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object has %d fields and %d values",
			ErrEncoding, len(node.Fields), len(node.Values))
	}
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, f, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func writeField(w io.Writer, f string, es *EncState) error {
	ff := applyColor(es, ir.ObjectType, FieldColor, quote(f))
	sep := applyColor(es, ir.ObjectType, SepColor, ":")
	return writeString(w, ff+sep+" ")
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v is not a JSON number", ErrEncoding, f)
		}
		v = formatFloat(f)
	case node.Number != "":
		if !json.Valid([]byte(node.Number)) {
			return fmt.Errorf("%w: %q is not a JSON number", ErrEncoding, node.Number)
		}
		v = node.Number
	default:
		return fmt.Errorf("%w: number without value", ErrEncoding)
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}

// formatFloat keeps a fractional part on integral values so that a float
// read back stays a float, and switches to exponent form for very large
// and very small magnitudes.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(v, ".e") {
		v += ".0"
	}
	return v
}

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}

// quote renders s as a JSON string, leaving non-ASCII and HTML
// characters unescaped.
func quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
