package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Schema is a loaded schema document.
type Schema struct {
	// Root is the resolution and ordering view of the document.
	Root *Node

	// JSON is the whole document as JSON, for validators.
	JSON []byte

	// Source names where the document came from.
	Source string
}

// Node is a schema subtree, reduced to "properties" and "items".
type Node struct {
	// Properties are in document order; nil when the subtree has no
	// "properties" keyword.
	Properties []Property
	Items      *Node
}

type Property struct {
	Name   string
	Schema *Node
}

// Property returns the subtree declared for name, or nil.
func (n *Node) Property(name string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return n.Properties[i].Schema
		}
	}
	return nil
}

func (n *Node) PropertyNames() []string {
	if n == nil {
		return nil
	}
	res := make([]string, len(n.Properties))
	for i := range n.Properties {
		res[i] = n.Properties[i].Name
	}
	return res
}

// Load reads a schema file.  Files ending in .yaml or .yml are read as
// YAML, anything else as JSON.
func Load(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrLoad, path)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrLoad, path, err)
	}
	var s *Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = ParseYAML(data)
	default:
		s, err = ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	s.Source = path
	return s, nil
}

// ParseJSON parses a JSON schema document keeping property order.
func ParseJSON(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	doc, err := decodeOrdered(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrFormat)
	}
	root, err := build(doc)
	if err != nil {
		return nil, err
	}
	return &Schema{Root: root, JSON: data}, nil
}

// ParseYAML parses a YAML schema document keeping property order.
func ParseYAML(data []byte) (*Schema, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	root, err := build(doc)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(plain(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return &Schema{Root: root, JSON: d}, nil
}

// decodeOrdered decodes the next JSON value from dec, representing objects
// as yaml.MapSlice so that key order survives.
func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		res := yaml.MapSlice{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", kt)
			}
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: key, Value: v})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return res, nil
	case '[':
		res := []any{}
		for dec.More() {
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", d)
	}
}

// build extracts the properties/items view of an ordered document.
// Boolean schemas and schemas without either keyword are leaves.
func build(doc any) (*Node, error) {
	m, ok := doc.(yaml.MapSlice)
	if !ok {
		return &Node{}, nil
	}
	res := &Node{}
	for _, item := range m {
		key, _ := item.Key.(string)
		switch key {
		case "properties":
			props, ok := item.Value.(yaml.MapSlice)
			if !ok {
				return nil, fmt.Errorf("%w: \"properties\" must be an object", ErrFormat)
			}
			res.Properties = make([]Property, 0, len(props))
			for _, p := range props {
				name := fmt.Sprint(p.Key)
				sub, err := build(p.Value)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
				res.Properties = append(res.Properties, Property{Name: name, Schema: sub})
			}
		case "items":
			// array form "items": [...] is positional and is not followed
			if _, ok := item.Value.(yaml.MapSlice); !ok {
				continue
			}
			sub, err := build(item.Value)
			if err != nil {
				return nil, fmt.Errorf("items: %w", err)
			}
			res.Items = sub
		}
	}
	return res, nil
}

// plain converts an ordered document into values encoding/json accepts.
func plain(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(map[string]any, len(x))
		for _, item := range x {
			res[fmt.Sprint(item.Key)] = plain(item.Value)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = plain(x[i])
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = plain(e)
		}
		return res
	default:
		return v
	}
}
