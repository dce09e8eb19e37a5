package nonbankexperience

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
)

func (e NonBankExperience) Validate() error {
	var errs validator.ValidationErrors

	record.ValidateSheetRef(&errs, e.InformationSheetID)
	errs.Required("organisme", e.Organisme)
	errs.MaxLength("organisme", e.Organisme, 150)
	errs.OneOf("secteur", e.Secteur, Sectors)
	errs.Required("poste", e.Poste)
	errs.MaxLength("poste", e.Poste, 100)
	errs.Required("date_debut", e.DateDebut)
	errs.Date("date_debut", e.DateDebut)
	errs.Date("date_fin", e.DateFin)
	errs.DateRange("date_debut", e.DateDebut, "date_fin", e.DateFin)

	return errs.Err()
}
