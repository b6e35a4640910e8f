package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/xlsx2json/ir"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestEncode(t *testing.T) {
	node := ir.Object(
		"name", ir.FromString("日本 <b>&</b>"),
		"n", ir.FromInt(3),
		"f", ir.FromFloat(1.5),
		"whole", ir.FromFloat(2),
		"ok", ir.FromBool(true),
		"none", ir.Null(),
		"list", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Object("a", ir.FromString("x"))}),
		"empty", ir.Object(),
		"nothing", ir.FromSlice(nil),
	)
	want := `{
  "name": "日本 <b>&</b>",
  "n": 3,
  "f": 1.5,
  "whole": 2.0,
  "ok": true,
  "none": null,
  "list": [
    1,
    {
      "a": "x"
    }
  ],
  "empty": {},
  "nothing": []
}
`
	got := MustString(node)
	require.Equal(t, want, got)
	require.True(t, gjson.Valid(got))
	require.Equal(t, "x", gjson.Get(got, "list.1.a").String())
	require.Equal(t, int64(3), gjson.Get(got, "n").Int())
}

func TestEncodeIndent(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(ir.Object("a", ir.FromSlice([]*ir.Node{ir.FromInt(1)})), buf, Indent(4))
	require.NoError(t, err)
	require.Equal(t, "{\n    \"a\": [\n        1\n    ]\n}\n", buf.String())
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		in   *ir.Node
		want string
	}{
		{ir.Null(), "null"},
		{ir.FromString("a\"b\n"), `"a\"b\n"`},
		{ir.FromFloat(0), "0.0"},
		{ir.FromFloat(1e22), "1e+22"},
		{ir.FromFloat(-0.25), "-0.25"},
		{ir.FromNumber("1e400"), "1e400"},
		{ir.FromInt(-7), "-7"},
	}
	for _, test := range tests {
		got := strings.TrimSuffix(MustString(test.in), "\n")
		require.Equal(t, test.want, got)
	}
}

func TestEncodeErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	bad := &ir.Node{Type: ir.NumberType, Number: "1x"}
	require.ErrorIs(t, Encode(bad, buf), ErrEncoding)
	mismatched := &ir.Node{Type: ir.ObjectType, Fields: []string{"a"}}
	require.ErrorIs(t, Encode(mismatched, buf), ErrEncoding)
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(ir.Object("a", ir.FromInt(1)), buf, EncodeColors(colors)))
	require.Equal(t, "{\n  <\"a\">: 1\n}\n", buf.String())
}
