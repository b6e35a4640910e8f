package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDiff(t *testing.T) {
	from := []byte("{\n  \"a\": 1,\n  \"b\": 2\n}\n")
	to := []byte("{\n  \"a\": 1,\n  \"b\": 3\n}\n")
	got := Diff(from, to, nil)
	want := "-  \"b\": 2\n+  \"b\": 3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	require.Empty(t, Diff(from, from, nil))
}

func TestChanges(t *testing.T) {
	from := []byte(`{"a": 1, "b": {"c": 2, "d": 3}, "gone": true}`)
	to := []byte(`{"a": 1, "b": {"c": 2, "d": 4}, "new": "x"}`)
	p, err := Changes(from, to)
	require.NoError(t, err)
	res := gjson.ParseBytes(p)
	require.Equal(t, int64(4), res.Get("b.d").Int())
	require.Equal(t, gjson.Null, res.Get("gone").Type)
	require.True(t, res.Get("gone").Exists())
	require.Equal(t, "x", res.Get("new").String())
	require.False(t, res.Get("a").Exists())

	p, err = Changes(from, []byte(`{"gone":true,"b":{"d":3,"c":2},"a":1}`))
	require.NoError(t, err)
	require.Nil(t, p)

	p, err = Changes([]byte(`[1]`), []byte(` [2] `))
	require.NoError(t, err)
	require.Equal(t, "[2]", string(p))

	_, err = Changes([]byte(`{`), to)
	require.ErrorIs(t, err, ErrEncoding)
}
