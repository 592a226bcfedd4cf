package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Canonical person record keys, in the order NewPerson lays them out.
const (
	KeyGivenName  = "given_name"
	KeyFamilyName = "family_name"
	KeyTitle      = "title"
)

// PersonKeys lists the canonical person keys in order.
func PersonKeys() []string {
	return []string{KeyGivenName, KeyFamilyName, KeyTitle}
}

// Field is a single key/value pair of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered mapping of text keys to text values. The zero value is
// an empty record. Records are treated as immutable; accessors return copies.
type Record struct {
	fields []Field
}

// NewPerson builds a person record with the canonical key order.
func NewPerson(givenName, familyName, title string) Record {
	return NewRecord(
		Field{Key: KeyGivenName, Value: givenName},
		Field{Key: KeyFamilyName, Value: familyName},
		Field{Key: KeyTitle, Value: title},
	)
}

// NewRecord builds a record from fields in the given order. A repeated key
// replaces the earlier value but keeps the earlier position.
func NewRecord(fields ...Field) Record {
	r := Record{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		r.set(f.Key, f.Value)
	}
	return r
}

func (r *Record) set(key, value string) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Keys returns the record's keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the record's values in key order.
func (r Record) Values() []string {
	values := make([]string, len(r.fields))
	for i, f := range r.fields {
		values[i] = f.Value
	}
	return values
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// String renders the record as {key: value, ...} for debugging.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", f.Key, f.Value)
	}
	b.WriteByte('}')
	return b.String()
}

// SameSchema reports whether two records have identical keys in identical order.
func SameSchema(a, b Record) bool {
	if len(a.fields) != len(b.fields) {
		return false
	}
	for i := range a.fields {
		if a.fields[i].Key != b.fields[i].Key {
			return false
		}
	}
	return true
}

// UnmarshalYAML decodes a YAML mapping while keeping its key order.
// Scalar values are taken as their literal text; null and nested values are rejected.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: record must be a mapping", value.Line)
	}

	decoded := Record{fields: make([]Field, 0, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: record key must be a scalar", k.Line)
		}
		if v.Kind == yaml.AliasNode && v.Alias != nil {
			v = v.Alias
		}
		if v.Kind != yaml.ScalarNode || v.Tag == "!!null" {
			return fmt.Errorf("line %d: field %q must be a text value", v.Line, k.Value)
		}
		decoded.set(k.Value, v.Value)
	}
	*r = decoded
	return nil
}

// MarshalYAML encodes the record as an ordered YAML mapping.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r.fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node, nil
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
// Strings, numbers and booleans are kept as their literal text.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object")
	}

	decoded := Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record key must be a string")
		}
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case string:
			decoded.set(key, v)
		case json.Number:
			decoded.set(key, v.String())
		case bool:
			decoded.set(key, fmt.Sprint(v))
		default:
			return fmt.Errorf("field %q must be a text value", key)
		}
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return err
	}
	*r = decoded
	return nil
}
