// Package fields maps records between their internal (camelCase) shape and the
// snake_case shape used on the wire and in the database.
//
// A Table lists every field of an entity once as an [internal, wire] pair; all
// conversions in both directions are driven by that table.
package fields

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// IDField is the internal and wire name of every entity identifier.
const IDField = "id"

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrImmutableField = errors.New("field cannot be changed")
	ErrInvalidValue   = errors.New("invalid field value")
)

type Field struct {
	Internal string
	Wire     string
	// Elem is set for fields holding an array of nested records.
	Elem *Table
}

// F declares a scalar field.
func F(internal, wire string) Field {
	return Field{Internal: internal, Wire: wire}
}

// Nested declares a field holding a list of records described by elem.
func Nested(internal, wire string, elem *Table) Field {
	return Field{Internal: internal, Wire: wire, Elem: elem}
}

type Table struct {
	name       string
	fields     []Field
	byInternal map[string]Field
	byWire     map[string]Field
}

// NewTable builds a mapping table. It panics on duplicate names since tables
// are declared once at package init.
func NewTable(name string, fields ...Field) *Table {
	t := &Table{
		name:       name,
		fields:     fields,
		byInternal: make(map[string]Field, len(fields)),
		byWire:     make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		if _, dup := t.byInternal[f.Internal]; dup {
			panic(fmt.Sprintf("fields: duplicate internal name %q in %s", f.Internal, name))
		}
		if _, dup := t.byWire[f.Wire]; dup {
			panic(fmt.Sprintf("fields: duplicate wire name %q in %s", f.Wire, name))
		}
		t.byInternal[f.Internal] = f
		t.byWire[f.Wire] = f
	}
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) Fields() []Field {
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// WireName returns the wire name for an internal field name.
func (t *Table) WireName(internal string) (string, bool) {
	f, ok := t.byInternal[internal]
	return f.Wire, ok
}

// InternalName returns the internal name for a wire field name.
func (t *Table) InternalName(wire string) (string, bool) {
	f, ok := t.byWire[wire]
	return f.Internal, ok
}

// ToWire renames the keys of an internal-shaped object. Unknown keys are an error.
func (t *Table) ToWire(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		f, ok := t.byInternal[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, t.name, k)
		}
		if f.Elem != nil {
			nv, err := renameNested(v, f.Elem.ToWire)
			if err != nil {
				return nil, err
			}
			v = nv
		}
		out[f.Wire] = v
	}
	return out, nil
}

// FromWire renames the keys of a wire-shaped object. Keys the table does not
// know (timestamps, server bookkeeping) are dropped.
func (t *Table) FromWire(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		f, ok := t.byWire[k]
		if !ok {
			continue
		}
		if f.Elem != nil {
			nv, err := renameNested(v, f.Elem.FromWire)
			if err != nil {
				return nil, err
			}
			v = nv
		}
		out[f.Internal] = v
	}
	return out, nil
}

// renameNested renames a nested list. Typed values (a slice of records) are
// first normalised through their JSON tags.
func renameNested(v any, rename func(map[string]any) (map[string]any, error)) (any, error) {
	switch v.(type) {
	case nil, map[string]any, []any:
	default:
		nv, err := normalise(v)
		if err != nil {
			return nil, fmt.Errorf("%w: nested value %T: %v", ErrInvalidValue, v, err)
		}
		v = nv
	}

	switch val := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return rename(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("nested element %d is %T, want object", i, item)
			}
			renamed, err := rename(m)
			if err != nil {
				return nil, err
			}
			out[i] = renamed
		}
		return out, nil
	default:
		return nil, fmt.Errorf("nested value is %T, want array", v)
	}
}

func normalise(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Object encodes v through its JSON tags into a generic object. Numbers are
// kept as json.Number so integers survive the trip.
func Object(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return decodeObject(data)
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeList(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var list []map[string]any
	if err := dec.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

func fromObject[T any](m map[string]any) (T, error) {
	var out T
	data, err := json.Marshal(m)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Marshal encodes v in its wire shape.
func Marshal[T any](t *Table, v T) ([]byte, error) {
	obj, err := Object(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t.name, err)
	}
	wire, err := t.ToWire(obj)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// Unmarshal decodes a wire-shaped object into T.
func Unmarshal[T any](t *Table, data []byte) (T, error) {
	var zero T
	obj, err := decodeObject(data)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", t.name, err)
	}
	return FromWireObject[T](t, obj)
}

// UnmarshalList decodes an array of wire-shaped objects.
func UnmarshalList[T any](t *Table, data []byte) ([]T, error) {
	objs, err := decodeList(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s list: %w", t.name, err)
	}
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		v, err := FromWireObject[T](t, obj)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ToWireObject returns v in its wire shape as a generic object.
func ToWireObject[T any](t *Table, v T) (map[string]any, error) {
	obj, err := Object(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t.name, err)
	}
	return t.ToWire(obj)
}

// FromWireObject converts a wire-shaped generic object into T.
func FromWireObject[T any](t *Table, obj map[string]any) (T, error) {
	var zero T
	internal, err := t.FromWire(obj)
	if err != nil {
		return zero, err
	}
	v, err := fromObject[T](internal)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", t.name, err)
	}
	return v, nil
}
