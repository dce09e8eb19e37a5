package professionaltraining

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
)

func (p ProfessionalTraining) Validate() error {
	var errs validator.ValidationErrors

	record.ValidateSheetRef(&errs, p.InformationSheetID)
	errs.Required("specialite", p.Specialite)
	errs.MaxLength("specialite", p.Specialite, 150)
	errs.Required("etablissement", p.Etablissement)
	errs.MaxLength("etablissement", p.Etablissement, 150)
	errs.MaxLength("diplome", p.Diplome, 150)
	errs.Required("date_debut", p.DateDebut)
	errs.Date("date_debut", p.DateDebut)
	errs.Date("date_fin", p.DateFin)
	errs.DateRange("date_debut", p.DateDebut, "date_fin", p.DateFin)

	return errs.Err()
}
