package bankexperience

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
)

func (e BankExperience) Validate() error {
	var errs validator.ValidationErrors

	record.ValidateSheetRef(&errs, e.InformationSheetID)
	errs.Required("affectation", e.Affectation)
	errs.MaxLength("affectation", e.Affectation, 150)
	errs.Required("poste", e.Poste)
	errs.MaxLength("poste", e.Poste, 100)
	errs.Required("date_debut", e.DateDebut)
	errs.Date("date_debut", e.DateDebut)
	errs.Date("date_fin", e.DateFin)
	errs.DateRange("date_debut", e.DateDebut, "date_fin", e.DateFin)
	if e.PBI < 0 {
		errs.Add("pbi", "pbi must not be negative")
	}

	return errs.Err()
}
