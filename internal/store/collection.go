package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
)

// ErrRecordNotFound is returned by update and delete actions when no element
// carries the requested id. The collection is left unchanged.
var ErrRecordNotFound = errors.New("record not found")

// Record is satisfied by pointers to entity structs.
type Record[T any] interface {
	*T
	EntityID() int64
	SetEntityID(id int64)
}

// nextID is max(existing ids)+1, or 1 for an empty collection.
func nextID[T any, P Record[T]](list []T) int64 {
	var highest int64
	for i := range list {
		if id := P(&list[i]).EntityID(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

func indexOf[T any, P Record[T]](list []T, id int64) int {
	for i := range list {
		if P(&list[i]).EntityID() == id {
			return i
		}
	}
	return -1
}

func appendRecord[T any, P Record[T]](list []T, item T) ([]T, T) {
	P(&item).SetEntityID(nextID[T, P](list))
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item), item
}

func patchRecord[T any, P Record[T]](list []T, table *fields.Table, id int64, patch fields.Patch) ([]T, error) {
	idx := indexOf[T, P](list, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrRecordNotFound, table.Name(), id)
	}
	merged, err := fields.Merge(table, list[idx], patch)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(list)
	out[idx] = merged
	return out, nil
}

func removeRecord[T any, P Record[T]](list []T, table *fields.Table, id int64) ([]T, error) {
	idx := indexOf[T, P](list, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrRecordNotFound, table.Name(), id)
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), nil
}
