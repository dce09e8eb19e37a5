package informationsheet

import (
	"context"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
)

// InformationSheetRepository persists sheets. Embedded disciplinary actions
// are not stored with the sheet; the service fills them in on read.
type InformationSheetRepository interface {
	List(ctx context.Context) ([]InformationSheet, error)
	GetByID(ctx context.Context, id int64) (InformationSheet, error)
	Create(ctx context.Context, sheet InformationSheet) (InformationSheet, error)
	Update(ctx context.Context, id int64, patch fields.Patch) (InformationSheet, error)
	Delete(ctx context.Context, id int64) error
}
