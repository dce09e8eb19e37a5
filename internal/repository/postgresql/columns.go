package postgresql

import (
	"fmt"
	"math"
	"strings"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
)

type columnKind int

const (
	kindText columnKind = iota
	// kindNullableText is stored as NULL when empty, for unique columns.
	kindNullableText
	kindDate
	kindInt
	kindNullableInt
)

// columnSet maps an entity's field table onto a SQL table. Wire names are
// column names; columns absent from kinds are plain text.
type columnSet struct {
	table  string
	fields *fields.Table
	kinds  map[string]columnKind
}

func (c columnSet) kind(col string) columnKind {
	return c.kinds[col]
}

// columns lists the stored columns in table order. Nested fields are not
// stored on the row.
func (c columnSet) columns() []string {
	var cols []string
	for _, f := range c.fields.Fields() {
		if f.Elem == nil {
			cols = append(cols, f.Wire)
		}
	}
	return cols
}

// selectList renders the columns so that every one scans into a Go string or
// integer: dates come back as YYYY-MM-DD and NULL text as "".
func (c columnSet) selectList() string {
	cols := c.columns()
	exprs := make([]string, len(cols))
	for i, col := range cols {
		switch c.kind(col) {
		case kindDate:
			exprs[i] = fmt.Sprintf("COALESCE(to_char(%s, 'YYYY-MM-DD'), '') AS %s", col, col)
		case kindNullableText:
			exprs[i] = fmt.Sprintf("COALESCE(%s, '') AS %s", col, col)
		default:
			exprs[i] = col
		}
	}
	return strings.Join(exprs, ", ")
}

// value converts a patch value into a query argument for col.
func (c columnSet) value(col string, v any) (any, error) {
	switch c.kind(col) {
	case kindInt, kindNullableInt:
		if v == nil {
			if c.kind(col) == kindInt {
				return int64(0), nil
			}
			return nil, nil
		}
		n, err := toInt64(v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", c.table, col, err)
		}
		return n, nil
	default:
		if v == nil {
			if c.kind(col) == kindText {
				return "", nil
			}
			return nil, nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s.%s: want string, got %T", c.table, col, v)
		}
		if c.kind(col) == kindText {
			return s, nil
		}
		return nullIfEmpty(s), nil
	}
}

// buildUpdate renders a partial UPDATE of the patched columns only.
func (c columnSet) buildUpdate(id int64, patch fields.Patch) (string, []interface{}, error) {
	query := fmt.Sprintf("UPDATE %s SET updated_at = NOW()", c.table)
	args := []interface{}{}
	argIdx := 1

	for _, key := range patch.Keys() {
		if key == fields.IDField {
			return "", nil, fmt.Errorf("%w: %s.%s", fields.ErrImmutableField, c.table, key)
		}
		col, ok := c.fields.WireName(key)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s.%s", fields.ErrUnknownField, c.table, key)
		}
		if !c.stored(col) {
			return "", nil, fmt.Errorf("%w: %s.%s", fields.ErrImmutableField, c.table, key)
		}
		arg, err := c.value(col, patch[key])
		if err != nil {
			return "", nil, err
		}
		query += fmt.Sprintf(", %s = $%d", col, argIdx)
		args = append(args, arg)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIdx, c.selectList())
	args = append(args, id)
	return query, args, nil
}

func (c columnSet) stored(col string) bool {
	for _, s := range c.columns() {
		if s == col {
			return true
		}
	}
	return false
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("want integer, got %v", n)
		}
		return int64(n), nil
	case interface{ Int64() (int64, error) }:
		return n.Int64()
	default:
		return 0, fmt.Errorf("want integer, got %T", v)
	}
}

// buildInsert renders an INSERT of every stored column but id. Columns
// missing from wire get their empty value.
func (c columnSet) buildInsert(wire map[string]any) (string, []interface{}, error) {
	var cols, placeholders []string
	var args []interface{}
	for _, col := range c.columns() {
		if col == fields.IDField {
			continue
		}
		arg, err := c.value(col, wire[col])
		if err != nil {
			return "", nil, err
		}
		cols = append(cols, col)
		args = append(args, arg)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		c.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), c.selectList())
	return query, args, nil
}
