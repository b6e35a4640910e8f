package ir

import (
	"testing"
)

func TestPrune(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "partial empty object survives",
			in:   `{"name": null, "address": "x"}`,
			want: `{"address":"x"}`,
		},
		{
			name: "complete empty elements are compacted",
			in:   `[{"a": null}, null, {"a": "v"}]`,
			want: `[{"a":"v"}]`,
		},
		{
			name: "blank strings",
			in:   `{"a": "  ", "b": "\t\n", "c": " c "}`,
			want: `{"c":" c "}`,
		},
		{
			name: "nested empties collapse",
			in:   `{"a": {"b": {"c": []}}, "d": [[], {}, [null]], "e": 0}`,
			want: `{"e":0}`,
		},
		{
			name: "false and zero are values",
			in:   `{"f": false, "z": 0, "s": "0"}`,
			want: `{"f":false,"s":"0","z":0}`,
		},
		{
			name: "array element with partial info is kept",
			in:   `{"rows": [{"k": "1", "v": null}, {"k": null, "v": null}, {"k": "3", "v": "c"}]}`,
			want: `{"rows":[{"k":"1"},{"k":"3","v":"c"}]}`,
		},
		{
			name: "everything empty",
			in:   `{"a": null, "b": [null, ""]}`,
			want: `null`,
		},
		{
			name: "scalar root",
			in:   `"x"`,
			want: `"x"`,
		},
		{
			name: "blank root",
			in:   `" "`,
			want: `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := parseJSON(t, tt.in)
			before := compact(t, in)
			got := Prune(in)
			if s := compact(t, got); s != tt.want {
				t.Errorf("got %s want %s", s, tt.want)
			}
			if after := compact(t, in); after != before {
				t.Errorf("input was modified: %s -> %s", before, after)
			}
			again := Prune(got)
			if s1, s2 := compact(t, got), compact(t, again); s1 != s2 {
				t.Errorf("not idempotent: %s then %s", s1, s2)
			}
		})
	}
}

func TestEmptyPredicates(t *testing.T) {
	tests := []struct {
		in         string
		empty      bool
		completely bool
	}{
		{`null`, true, true},
		{`""`, true, true},
		{`" "`, true, true},
		{`"a"`, false, false},
		{`0`, false, false},
		{`false`, false, false},
		{`[]`, true, true},
		{`{}`, true, true},
		{`[null]`, false, true},
		{`{"a": ""}`, false, true},
		{`{"a": [{}, null]}`, false, true},
		{`{"a": [{}, 1]}`, false, false},
	}
	for _, tt := range tests {
		n := parseJSON(t, tt.in)
		if got := IsEmpty(n); got != tt.empty {
			t.Errorf("IsEmpty(%s) = %t", tt.in, got)
		}
		if got := IsCompletelyEmpty(n); got != tt.completely {
			t.Errorf("IsCompletelyEmpty(%s) = %t", tt.in, got)
		}
	}
	if !IsEmpty(nil) || !IsCompletelyEmpty(nil) {
		t.Error("nil node should be empty")
	}
}
