package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	json "github.com/goccy/go-json"
)

// ParentParam is the list filter on the owning information sheet.
const ParentParam = "information_sheet_id"

// Resource is the REST adapter of one entity type.
type Resource[T any] struct {
	c     *Client
	path  string
	table *fields.Table
}

func NewResource[T any](c *Client, path string, table *fields.Table) *Resource[T] {
	return &Resource[T]{c: c, path: path, table: table}
}

func (r *Resource[T]) Path() string { return r.path }

// GetAll lists every record, or only those of one information sheet when
// parentID is set.
func (r *Resource[T]) GetAll(ctx context.Context, parentID *int64) ([]T, error) {
	var query url.Values
	if parentID != nil {
		query = url.Values{ParentParam: {strconv.FormatInt(*parentID, 10)}}
	}
	data, err := r.c.do(ctx, http.MethodGet, r.path, query, nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return []T{}, nil
	}
	return fields.UnmarshalList[T](r.table, data)
}

func (r *Resource[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	data, err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, nil)
	if err != nil {
		return zero, err
	}
	return fields.Unmarshal[T](r.table, data)
}

// Create sends v without its id and without empty optional fields; the
// server assigns the id.
func (r *Resource[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	wire, err := fields.ToWireObject(r.table, v)
	if err != nil {
		return zero, err
	}
	delete(wire, fields.IDField)

	payload, err := json.Marshal(wire)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", r.table.Name(), err)
	}
	data, err := r.c.do(ctx, http.MethodPost, r.path, nil, payload)
	if err != nil {
		return zero, err
	}
	return fields.Unmarshal[T](r.table, data)
}

// Update sends only the keys present in patch.
func (r *Resource[T]) Update(ctx context.Context, id int64, patch fields.Patch) (T, error) {
	var zero T
	wire, err := r.table.PatchToWire(patch)
	if err != nil {
		return zero, err
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return zero, fmt.Errorf("encode %s patch: %w", r.table.Name(), err)
	}
	data, err := r.c.do(ctx, http.MethodPut, r.itemPath(id), nil, payload)
	if err != nil {
		return zero, err
	}
	return fields.Unmarshal[T](r.table, data)
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
	return err
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}
