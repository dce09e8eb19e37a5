package http

import (
	"context"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	sheetService "github.com/cmlabs-hris/bank-backoffice-go/internal/service/informationsheet"
)

// sheetResource serves the sheet service through ResourceService. Sheets
// are top-level records, so the list filter does not apply.
type sheetResource struct {
	sheetService.InformationSheetService
}

func (s sheetResource) List(ctx context.Context, _ record.Filter) ([]informationsheet.InformationSheet, error) {
	return s.InformationSheetService.List(ctx)
}

func NewInformationSheetHandler(service sheetService.InformationSheetService) ResourceHandler {
	return NewResourceHandler[informationsheet.InformationSheet]("Information sheet", informationsheet.Fields, sheetResource{service})
}
