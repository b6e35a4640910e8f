package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Insert  bool
	Prune   bool
	Catalog bool
	Rules   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("X2J_DEBUG_RESOLVE")
	d.Insert = boolEnv("X2J_DEBUG_INSERT")
	d.Prune = boolEnv("X2J_DEBUG_PRUNE")
	d.Catalog = boolEnv("X2J_DEBUG_CATALOG")
	d.Rules = boolEnv("X2J_DEBUG_RULES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Insert() bool {
	return d.Insert
}
func Prune() bool {
	return d.Prune
}
func Catalog() bool {
	return d.Catalog
}
func Rules() bool {
	return d.Rules
}

// Logf writes to stderr.  Maps, slices and json.Number arguments are
// rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
