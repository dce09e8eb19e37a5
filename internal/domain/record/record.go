// Package record holds what every back-office entity has in common.
package record

import (
	"context"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
)

// Filter narrows list queries on sub-records of an information sheet.
type Filter struct {
	InformationSheetID *int64
}

// ForSheet returns a filter on one information sheet.
func ForSheet(id int64) Filter {
	return Filter{InformationSheetID: &id}
}

// Validatable is implemented by every entity.
type Validatable interface {
	Validate() error
}

// Repository is the storage contract shared by the sub-records of an
// information sheet.
type Repository[T any] interface {
	List(ctx context.Context, filter Filter) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, patch fields.Patch) (T, error)
	Delete(ctx context.Context, id int64) error
}

// ValidateSheetRef rejects non-positive foreign keys.
func ValidateSheetRef(errs *validator.ValidationErrors, id *int64) {
	if id != nil && *id <= 0 {
		errs.Add("information_sheet_id", "information_sheet_id must be a positive integer")
	}
}
