package ir

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, `null`},
		{int8(-3), `-3`},
		{uint32(7), `7`},
		{float32(1.5), `1.5`},
		{json.Number("12"), `12`},
		{json.Number("1e400"), `1e400`},
		{[]string{"a", "b"}, `["a","b"]`},
		{map[string]any{"b": 1, "a": nil}, `{"a":null,"b":1}`},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), `"2024-01-02T03:04:05Z"`},
		{struct{ X int }{1}, `"{1}"`},
	}
	for _, tt := range tests {
		if got := compact(t, FromAny(tt.in)); got != tt.want {
			t.Errorf("FromAny(%#v) = %s want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromAnySortsKeys(t *testing.T) {
	n := FromAny(map[string]any{"z": 1, "a": 2, "m": 3})
	if diff := cmp.Diff([]string{"a", "m", "z"}, n.Fields); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromNumber(t *testing.T) {
	if n := FromNumber("42"); n.Int64 == nil || *n.Int64 != 42 {
		t.Errorf("expected int 42")
	}
	if n := FromNumber("4.25"); n.Float64 == nil || *n.Float64 != 4.25 {
		t.Errorf("expected float 4.25")
	}
	if n := FromNumber("1e400"); n.Number != "1e400" {
		t.Errorf("expected textual number, got %+v", n)
	}
	if n := FromAny(uint64(math.MaxUint64)); n.Number != "18446744073709551615" {
		t.Errorf("expected textual number, got %+v", n)
	}
}

func TestClone(t *testing.T) {
	n := parseJSON(t, `{"a": [1, {"b": "c"}]}`)
	c := n.Clone()
	c.Values[0].Values[1].Set("b", FromString("changed"))
	if got := compact(t, n); got != `{"a":[1,{"b":"c"}]}` {
		t.Errorf("original modified: %s", got)
	}
}
