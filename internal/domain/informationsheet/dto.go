package informationsheet

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/validator"
)

func (s InformationSheet) Validate() error {
	var errs validator.ValidationErrors

	// Identity
	errs.Required("matricule", s.Matricule)
	if s.Matricule != "" && !validator.IsValidMatricule(s.Matricule) {
		errs.Add("matricule", "matricule may only contain 3-20 letters, digits or dashes")
	}
	if s.NIN != "" && !validator.IsValidNIN(s.NIN) {
		errs.Add("nin", "nin must be exactly 18 digits")
	}

	// Personal
	errs.Required("nom", s.Nom)
	errs.MaxLength("nom", s.Nom, 100)
	errs.Required("prenom", s.Prenom)
	errs.MaxLength("prenom", s.Prenom, 100)
	errs.Required("date_naissance", s.DateNaissance)
	errs.Date("date_naissance", s.DateNaissance)
	errs.MaxLength("adresse", s.Adresse, 255)
	errs.OneOf("situation_familiale", s.SituationFamiliale, MaritalStatuses)
	errs.Required("sexe", s.Sexe)
	errs.OneOf("sexe", s.Sexe, Genders)

	// Employment
	errs.Required("date_recrutement", s.DateRecrutement)
	errs.Date("date_recrutement", s.DateRecrutement)
	errs.DateRange("date_naissance", s.DateNaissance, "date_recrutement", s.DateRecrutement)
	errs.OneOf("type_contrat", s.TypeContrat, ContractTypes)
	errs.Required("poste", s.Poste)
	errs.MaxLength("poste", s.Poste, 100)

	// Decision
	errs.OneOf("type_decision", s.TypeDecision, DecisionTypes)
	errs.Date("date_decision", s.DateDecision)

	// Embedded experience copies
	errs.Date("date_debut_bancaire", s.DateDebutBancaire)
	errs.Date("date_fin_bancaire", s.DateFinBancaire)
	errs.DateRange("date_debut_bancaire", s.DateDebutBancaire, "date_fin_bancaire", s.DateFinBancaire)
	errs.Date("date_debut_non_bancaire", s.DateDebutNonBancaire)
	errs.Date("date_fin_non_bancaire", s.DateFinNonBancaire)
	errs.DateRange("date_debut_non_bancaire", s.DateDebutNonBancaire, "date_fin_non_bancaire", s.DateFinNonBancaire)

	return errs.Err()
}
