package fields

import (
	"fmt"
	"sort"
)

// Patch is a partial record keyed by internal field names. Keys absent from
// the patch are left untouched by Merge and are not sent on the wire.
type Patch map[string]any

// Keys returns the patch keys in a stable order.
func (p Patch) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Check rejects keys the table does not declare and any attempt to change the id.
func (t *Table) Check(p Patch) error {
	for _, k := range p.Keys() {
		if k == IDField {
			return fmt.Errorf("%w: %s.%s", ErrImmutableField, t.name, k)
		}
		if _, ok := t.byInternal[k]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t.name, k)
		}
	}
	return nil
}

// PatchToWire renames a patch for an outgoing partial update.
func (t *Table) PatchToWire(p Patch) (map[string]any, error) {
	if err := t.Check(p); err != nil {
		return nil, err
	}
	return t.ToWire(p)
}

// PatchFromWire converts an incoming partial body into a Patch. Unlike
// FromWire it is strict: unknown wire keys and the id are rejected.
func (t *Table) PatchFromWire(m map[string]any) (Patch, error) {
	p := make(Patch, len(m))
	for k, v := range m {
		if k == IDField {
			return nil, fmt.Errorf("%w: %s.%s", ErrImmutableField, t.name, k)
		}
		f, ok := t.byWire[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, t.name, k)
		}
		if f.Elem != nil {
			nv, err := renameNested(v, f.Elem.FromWire)
			if err != nil {
				return nil, err
			}
			v = nv
		}
		p[f.Internal] = v
	}
	return p, nil
}

// Merge returns base with every patch key overwritten (shallow merge).
func Merge[T any](t *Table, base T, p Patch) (T, error) {
	if err := t.Check(p); err != nil {
		return base, err
	}
	obj, err := Object(base)
	if err != nil {
		return base, fmt.Errorf("encode %s: %w", t.name, err)
	}
	for k, v := range p {
		obj[k] = v
	}
	merged, err := fromObject[T](obj)
	if err != nil {
		return base, fmt.Errorf("%w: %s: %v", ErrInvalidValue, t.name, err)
	}
	return merged, nil
}
