// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// MaxDepth is the deepest JSON nesting that Decode accepts.
// It is a guard against runaway input and is not configurable.
const MaxDepth = 10000

// Decode converts a JSON document into an ordered list of result sets.
//
// The document must be an array of objects with FileName, Lexer, Parser
// and Nodes members. Nesting is checked against MaxDepth before any tree
// is built. On error no result sets are returned.
func Decode(data []byte) ([]*ParsingResultSet, error) {
	if offset, err := checkDepth(data, MaxDepth); err != nil {
		return nil, &DeserializationError{Offset: offset, Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DeserializationError{Err: errors.Wrap(err, "json")}
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, &DeserializationError{Msg: fmt.Sprintf("top-level value is %s, want array", jsonType(doc))}
	}

	sets := make([]*ParsingResultSet, 0, len(items))
	for i, item := range items {
		set, err := decodeResultSet(item)
		if err != nil {
			return nil, &DeserializationError{Err: errors.Wrapf(err, "result set %d", i)}
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// checkDepth walks the token stream and fails as soon as the nesting
// exceeds limit. It also catches syntax errors before Unmarshal runs.
func checkDepth(data []byte, limit int) (int64, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return dec.InputOffset(), errors.Wrap(err, "json")
		}
		switch tok {
		case json.Delim('['), json.Delim('{'):
			depth++
			if depth > limit {
				return dec.InputOffset(), errors.WithStack(ErrMaxDepth)
			}
		case json.Delim(']'), json.Delim('}'):
			depth--
		}
	}
	return 0, nil
}

func decodeResultSet(v any) (*ParsingResultSet, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Errorf("got %s, want object", jsonType(v))
	}
	set := &ParsingResultSet{}
	var err error
	if set.FileName, err = optionalString(obj, "FileName"); err != nil {
		return nil, err
	}
	if set.Lexer, err = optionalString(obj, "Lexer"); err != nil {
		return nil, err
	}
	if set.Parser, err = optionalString(obj, "Parser"); err != nil {
		return nil, err
	}
	raw, err := optionalArray(obj, "Nodes")
	if err != nil {
		return nil, err
	}
	set.Nodes = make([]Node, len(raw))
	if err := decodeNodes(raw, set.Nodes); err != nil {
		return nil, err
	}
	return set, nil
}

// decodeNodes fills slots from raw values without recursion.
// Each Element allocates slots for its children and queues them.
func decodeNodes(raw []any, slots []Node) error {
	type pending struct {
		raw  any
		slot *Node
	}
	stack := make([]pending, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		stack = append(stack, pending{raw: raw[i], slot: &slots[i]})
	}
	for len(stack) != 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		obj, ok := p.raw.(map[string]any)
		if !ok {
			return errors.Errorf("node: got %s, want object", jsonType(p.raw))
		}
		kind, err := requiredString(obj, "kind")
		if err != nil {
			return errors.Wrap(err, "node")
		}
		switch kind {
		case "Element":
			name, err := requiredString(obj, "name")
			if err != nil {
				return errors.Wrap(err, "element")
			}
			kids, err := optionalArray(obj, "children")
			if err != nil {
				return errors.Wrapf(err, "element %q", name)
			}
			e := &Element{Name: name, Children: make([]Node, len(kids))}
			*p.slot = e
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, pending{raw: kids[i], slot: &e.Children[i]})
			}
		case "Text":
			value, err := requiredString(obj, "value")
			if err != nil {
				return errors.Wrap(err, "text")
			}
			*p.slot = &Text{Value: value}
		case "Attr":
			name, err := requiredString(obj, "name")
			if err != nil {
				return errors.Wrap(err, "attr")
			}
			value, err := requiredString(obj, "value")
			if err != nil {
				return errors.Wrapf(err, "attr %q", name)
			}
			*p.slot = &Attr{Name: name, Value: value}
		default:
			return errors.Errorf("node: unknown kind %q", kind)
		}
	}
	return nil
}

func requiredString(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", errors.Errorf("missing %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("%q: got %s, want string", key, jsonType(v))
	}
	return s, nil
}

func optionalString(obj map[string]any, key string) (string, error) {
	if v, ok := obj[key]; !ok || v == nil {
		return "", nil
	}
	return requiredString(obj, key)
}

func optionalArray(obj map[string]any, key string) ([]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, errors.Errorf("%q: got %s, want array", key, jsonType(v))
	}
	return a, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
