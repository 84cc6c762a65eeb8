package loot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/goccy/go-yaml"
)

type member struct {
	key   string
	value any
}

// Document is one node of a loot table: an ordered mapping from field name to
// value. Documents are produced by the translators in this package and have no
// exported mutators, so a built Document can be shared between parents freely.
//
// Values are whatever the caller passed in (numbers, strings, slices, nested
// Documents, Args) and are never copied or modified.
type Document struct {
	members []member
}

// with returns d extended by key=value. An existing key keeps its position and
// takes the new value. d itself is left untouched.
func (d Document) with(key string, value any) Document {
	for i, m := range d.members {
		if m.key == key {
			members := make([]member, len(d.members))
			copy(members, d.members)
			members[i].value = value
			return Document{members: members}
		}
	}
	members := make([]member, len(d.members), len(d.members)+1)
	copy(members, d.members)
	return Document{members: append(members, member{key: key, value: value})}
}

// Get returns the value stored under key.
func (d Document) Get(key string) (any, bool) {
	for _, m := range d.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (d Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the field names in output order.
func (d Document) Keys() []string {
	keys := make([]string, len(d.members))
	for i, m := range d.members {
		keys[i] = m.key
	}
	return keys
}

// Len returns the number of fields.
func (d Document) Len() int { return len(d.members) }

// All iterates over the fields in output order.
func (d Document) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, m := range d.members {
			if !yield(m.key, m.value) {
				return
			}
		}
	}
}

// Map converts d into plain maps and slices, recursing into nested Documents.
// Key order is lost.
func (d Document) Map() map[string]any {
	out := make(map[string]any, len(d.members))
	for _, m := range d.members {
		out[m.key] = plain(m.value)
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case Document:
		return t.Map()
	case []Document:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = child.Map()
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = plain(child)
		}
		return out
	case Args:
		return plain(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = plain(child)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes the fields in order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", m.key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping its key order. Nested objects become
// Documents, arrays become []any and numbers are kept as json.Number.
func (d *Document) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("loot document must be a JSON object, got %v", tok)
	}
	doc, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

func decodeObject(dec *json.Decoder) (Document, error) {
	var doc Document
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Document{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Document{}, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Document{}, fmt.Errorf("field %q: %w", key, err)
		}
		doc = doc.with(key, value)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// MarshalYAML lets goccy/go-yaml emit the fields in order.
func (d Document) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, len(d.members))
	for _, m := range d.members {
		ms = append(ms, yaml.MapItem{Key: m.key, Value: yamlValue(m.value)})
	}
	return ms, nil
}

// yamlValue turns decoded json.Number values back into numbers; go-yaml would
// otherwise quote them as strings.
func yamlValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = yamlValue(e)
		}
		return out
	default:
		return v
	}
}

// String renders d as compact JSON, mostly for logs and test failures.
func (d Document) String() string {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid document: %v>", err)
	}
	return string(data)
}
