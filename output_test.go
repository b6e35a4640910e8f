package xlsx2json

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/xlsx2json/ir"
	"github.com/signadot/xlsx2json/validate"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOutputWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	o := &Output{Dir: dir}
	res := &Result{
		Doc: ir.Object("名前", ir.FromString("<値>")),
		Errors: []validate.Error{
			{Path: []string{"a"}, Message: "bad"},
		},
	}
	require.NoError(t, o.Write("book", res))
	d, err := os.ReadFile(filepath.Join(dir, "book.json"))
	require.NoError(t, err)
	require.Equal(t, "{\n  \"名前\": \"<値>\"\n}\n", string(d))
	d, err = os.ReadFile(filepath.Join(dir, "book.error.log"))
	require.NoError(t, err)
	require.Equal(t, "a: bad\n", string(d))

	// a valid rerun drops the error log
	res.Errors = nil
	require.NoError(t, o.Write("book", res))
	_, err = os.Stat(filepath.Join(dir, "book.error.log"))
	require.True(t, os.IsNotExist(err))
}

func TestOutputStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	o := &Output{Dir: StdoutDir, Stdout: buf}
	require.Equal(t, "", o.Path("book"))
	res := &Result{
		Doc:    ir.Object("a", ir.FromInt(1)),
		Errors: []validate.Error{{Message: "ignored here"}},
	}
	require.NoError(t, o.Write("book", res))
	require.Equal(t, int64(1), gjson.Get(buf.String(), "a").Int())
}

func TestOutputDiff(t *testing.T) {
	dir := t.TempDir()
	logs := &bytes.Buffer{}
	diff := &bytes.Buffer{}
	o := &Output{Dir: dir, Diff: true, DiffOut: diff, Log: testLogger(logs)}

	require.NoError(t, o.Write("book", &Result{Doc: ir.Object("a", ir.FromInt(1), "b", ir.FromInt(2))}))
	require.Contains(t, logs.String(), "new document")
	require.Empty(t, diff.String())

	require.NoError(t, o.Write("book", &Result{Doc: ir.Object("a", ir.FromInt(1), "b", ir.FromInt(3))}))
	require.Contains(t, logs.String(), "document changed")
	require.Contains(t, logs.String(), `{\"b\":3}`)
	require.Equal(t, "-  \"b\": 2\n+  \"b\": 3\n", diff.String())

	diff.Reset()
	require.NoError(t, o.Write("book", &Result{Doc: ir.Object("a", ir.FromInt(1), "b", ir.FromInt(3))}))
	require.Contains(t, logs.String(), "document unchanged")
	require.Empty(t, diff.String())
}
