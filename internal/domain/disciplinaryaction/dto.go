package disciplinaryaction

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
)

func (a DisciplinaryAction) Validate() error {
	var errs validator.ValidationErrors

	record.ValidateSheetRef(&errs, a.InformationSheetID)
	errs.Required("type_sanction", a.TypeSanction)
	errs.MaxLength("type_sanction", a.TypeSanction, 100)
	errs.OneOf("classification", a.Classification, Classifications)
	errs.Required("reference_decision", a.ReferenceDecision)
	errs.MaxLength("reference_decision", a.ReferenceDecision, 50)
	errs.Required("date_decision", a.DateDecision)
	errs.Date("date_decision", a.DateDecision)
	errs.MaxLength("motif", a.Motif, 500)

	return errs.Err()
}
