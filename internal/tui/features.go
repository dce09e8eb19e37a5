package tui

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/client"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/report"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/store"
)

var errNoSheet = errors.New("la sanction n'est rattachée à aucune fiche")

// Backend is what the console talks to.
type Backend struct {
	InformationSheets     Resource[informationsheet.InformationSheet]
	BankExperiences       Resource[bankexperience.BankExperience]
	NonBankExperiences    Resource[nonbankexperience.NonBankExperience]
	DisciplinaryActions   Resource[disciplinaryaction.DisciplinaryAction]
	ProfessionalTrainings Resource[professionaltraining.ProfessionalTraining]
	Reports               *report.Builder
}

// FromAPI serves the console from the REST API; documents are built from the
// same API.
func FromAPI(api *client.API, head report.Letterhead) Backend {
	return Backend{
		InformationSheets:     api.InformationSheets,
		BankExperiences:       api.BankExperiences,
		NonBankExperiences:    api.NonBankExperiences,
		DisciplinaryActions:   api.DisciplinaryActions,
		ProfessionalTrainings: api.ProfessionalTrainings,
		Reports:               report.NewBuilder(api, head),
	}
}

var sheetRef = formField{Name: "informationSheetId", Label: "N° de fiche", Kind: kindRef, Hint: "identifiant de la fiche"}

func pages(b Backend, data *store.DataStore, ui *store.UIStore, st styles) []page {
	return []page{
		newFeaturePage(featureDef[informationsheet.InformationSheet]{
			Title:    "Fiches de renseignements",
			Singular: "Fiche de renseignements",
			Table:    informationsheet.Fields,
			Columns: []column{
				{Field: "id", Title: "N°", Width: 5},
				{Field: "matricule", Title: "Matricule", Width: 12},
				{Field: "nom", Title: "Nom", Width: 18},
				{Field: "prenom", Title: "Prénom", Width: 18},
				{Field: "poste", Title: "Poste", Width: 24},
				{Field: "dateRecrutement", Title: "Recrutement", Width: 12},
				{Field: "typeContrat", Title: "Contrat", Width: 10},
			},
			Form: []formField{
				{Name: "matricule", Label: "Matricule"},
				{Name: "nin", Label: "NIN", Hint: "18 chiffres"},
				{Name: "nom", Label: "Nom"},
				{Name: "prenom", Label: "Prénom"},
				{Name: "dateNaissance", Label: "Date de naissance", Hint: "AAAA-MM-JJ"},
				{Name: "lieuNaissance", Label: "Lieu de naissance"},
				{Name: "adresse", Label: "Adresse"},
				{Name: "situationFamiliale", Label: "Situation familiale", Hint: "celibataire, marie, divorce, veuf"},
				{Name: "sexe", Label: "Sexe", Hint: "M ou F"},
				{Name: "dateRecrutement", Label: "Date de recrutement", Hint: "AAAA-MM-JJ"},
				{Name: "typeContrat", Label: "Type de contrat", Hint: "CDI, CDD, pre-emploi"},
				{Name: "poste", Label: "Poste"},
				{Name: "groupe", Label: "Groupe"},
				{Name: "classe", Label: "Classe"},
				{Name: "echelon", Label: "Échelon"},
				{Name: "typeDecision", Label: "Type de décision"},
				{Name: "numeroDecision", Label: "N° de décision"},
				{Name: "dateDecision", Label: "Date de décision", Hint: "AAAA-MM-JJ"},
				{Name: "affectationBancaire", Label: "Affectation bancaire"},
				{Name: "posteBancaire", Label: "Poste bancaire"},
				{Name: "dateDebutBancaire", Label: "Début (banque)", Hint: "AAAA-MM-JJ"},
				{Name: "dateFinBancaire", Label: "Fin (banque)", Hint: "AAAA-MM-JJ"},
				{Name: "organismeNonBancaire", Label: "Organisme non bancaire"},
				{Name: "posteNonBancaire", Label: "Poste non bancaire"},
				{Name: "dateDebutNonBancaire", Label: "Début (hors banque)", Hint: "AAAA-MM-JJ"},
				{Name: "dateFinNonBancaire", Label: "Fin (hors banque)", Hint: "AAAA-MM-JJ"},
			},
			Resource: b.InformationSheets,
			ID:       func(s informationsheet.InformationSheet) int64 { return s.ID },
			List:     func(s store.DataState) []informationsheet.InformationSheet { return s.InformationSheets },
			Set:      data.SetInformationSheets,
			Update:   data.UpdateInformationSheet,
			Delete:   data.DeleteInformationSheet,
			State:    func(s store.UIState) store.FeatureState[informationsheet.InformationSheet] { return s.InformationSheet },
			Open:     ui.OpenInformationSheet,
			Close:    ui.CloseInformationSheet,
			SetRow:   ui.SetInformationSheetCurrentRow,
			Print: func(ctx context.Context, rb *report.Builder, s informationsheet.InformationSheet) (report.Document, error) {
				return rb.WorkCertificate(ctx, s.ID)
			},
			PrintLabel: "attestation de travail",
		}, data, ui, st),

		newFeaturePage(featureDef[bankexperience.BankExperience]{
			Title:    "Expériences bancaires",
			Singular: "Expérience bancaire",
			Table:    bankexperience.Fields,
			Columns: []column{
				{Field: "id", Title: "N°", Width: 5},
				{Field: "informationSheetId", Title: "Fiche", Width: 6},
				{Field: "affectation", Title: "Affectation", Width: 26},
				{Field: "poste", Title: "Poste", Width: 22},
				{Field: "dateDebut", Title: "Début", Width: 12},
				{Field: "dateFin", Title: "Fin", Width: 12},
				{Field: "pbi", Title: "PBI", Width: 5},
			},
			Form: []formField{
				sheetRef,
				{Name: "affectation", Label: "Affectation"},
				{Name: "poste", Label: "Poste"},
				{Name: "dateDebut", Label: "Date de début", Hint: "AAAA-MM-JJ"},
				{Name: "dateFin", Label: "Date de fin", Hint: "AAAA-MM-JJ, vide si en cours"},
				{Name: "pbi", Label: "PBI", Kind: kindInt},
			},
			Resource: b.BankExperiences,
			ID:       func(e bankexperience.BankExperience) int64 { return e.ID },
			List:     func(s store.DataState) []bankexperience.BankExperience { return s.BankExperiences },
			Set:      data.SetBankExperiences,
			Update:   data.UpdateBankExperience,
			Delete:   data.DeleteBankExperience,
			State:    func(s store.UIState) store.FeatureState[bankexperience.BankExperience] { return s.BankExperience },
			Open:     ui.OpenBankExperience,
			Close:    ui.CloseBankExperience,
			SetRow:   ui.SetBankExperienceCurrentRow,
		}, data, ui, st),

		newFeaturePage(featureDef[nonbankexperience.NonBankExperience]{
			Title:    "Expériences hors banque",
			Singular: "Expérience hors banque",
			Table:    nonbankexperience.Fields,
			Columns: []column{
				{Field: "id", Title: "N°", Width: 5},
				{Field: "informationSheetId", Title: "Fiche", Width: 6},
				{Field: "organisme", Title: "Organisme", Width: 26},
				{Field: "secteur", Title: "Secteur", Width: 8},
				{Field: "poste", Title: "Poste", Width: 22},
				{Field: "dateDebut", Title: "Début", Width: 12},
				{Field: "dateFin", Title: "Fin", Width: 12},
			},
			Form: []formField{
				sheetRef,
				{Name: "organisme", Label: "Organisme"},
				{Name: "secteur", Label: "Secteur", Hint: "public ou prive"},
				{Name: "poste", Label: "Poste"},
				{Name: "dateDebut", Label: "Date de début", Hint: "AAAA-MM-JJ"},
				{Name: "dateFin", Label: "Date de fin", Hint: "AAAA-MM-JJ"},
			},
			Resource: b.NonBankExperiences,
			ID:       func(e nonbankexperience.NonBankExperience) int64 { return e.ID },
			List:     func(s store.DataState) []nonbankexperience.NonBankExperience { return s.NonBankExperiences },
			Set:      data.SetNonBankExperiences,
			Update:   data.UpdateNonBankExperience,
			Delete:   data.DeleteNonBankExperience,
			State:    func(s store.UIState) store.FeatureState[nonbankexperience.NonBankExperience] { return s.NonBankExperience },
			Open:     ui.OpenNonBankExperience,
			Close:    ui.CloseNonBankExperience,
			SetRow:   ui.SetNonBankExperienceCurrentRow,
		}, data, ui, st),

		newFeaturePage(featureDef[disciplinaryaction.DisciplinaryAction]{
			Title:    "Sanctions disciplinaires",
			Singular: "Sanction disciplinaire",
			Table:    disciplinaryaction.Fields,
			Columns: []column{
				{Field: "id", Title: "N°", Width: 5},
				{Field: "informationSheetId", Title: "Fiche", Width: 6},
				{Field: "typeSanction", Title: "Sanction", Width: 22},
				{Field: "classification", Title: "Degré", Width: 12},
				{Field: "referenceDecision", Title: "Décision", Width: 16},
				{Field: "dateDecision", Title: "Date", Width: 12},
			},
			Form: []formField{
				sheetRef,
				{Name: "typeSanction", Label: "Type de sanction"},
				{Name: "classification", Label: "Degré", Hint: "1er degre ... 4eme degre"},
				{Name: "referenceDecision", Label: "Référence de la décision"},
				{Name: "dateDecision", Label: "Date de la décision", Hint: "AAAA-MM-JJ"},
				{Name: "motif", Label: "Motif"},
			},
			Resource: b.DisciplinaryActions,
			ID:       func(a disciplinaryaction.DisciplinaryAction) int64 { return a.ID },
			List:     func(s store.DataState) []disciplinaryaction.DisciplinaryAction { return s.DisciplinaryActions },
			Set:      data.SetDisciplinaryActions,
			Update:   data.UpdateDisciplinaryAction,
			Delete:   data.DeleteDisciplinaryAction,
			State:    func(s store.UIState) store.FeatureState[disciplinaryaction.DisciplinaryAction] { return s.DisciplinaryAction },
			Open:     ui.OpenDisciplinaryAction,
			Close:    ui.CloseDisciplinaryAction,
			SetRow:   ui.SetDisciplinaryActionCurrentRow,
			Print: func(ctx context.Context, rb *report.Builder, a disciplinaryaction.DisciplinaryAction) (report.Document, error) {
				if a.InformationSheetID == nil {
					return report.Document{}, errNoSheet
				}
				return rb.InvestigationLetter(ctx, *a.InformationSheetID, a.ID)
			},
			PrintLabel: "lettre d'enquête",
		}, data, ui, st),

		newFeaturePage(featureDef[professionaltraining.ProfessionalTraining]{
			Title:    "Formations",
			Singular: "Formation",
			Table:    professionaltraining.Fields,
			Columns: []column{
				{Field: "id", Title: "N°", Width: 5},
				{Field: "informationSheetId", Title: "Fiche", Width: 6},
				{Field: "specialite", Title: "Spécialité", Width: 24},
				{Field: "etablissement", Title: "Établissement", Width: 22},
				{Field: "diplome", Title: "Diplôme", Width: 14},
				{Field: "dateDebut", Title: "Début", Width: 12},
				{Field: "dateFin", Title: "Fin", Width: 12},
			},
			Form: []formField{
				sheetRef,
				{Name: "specialite", Label: "Spécialité"},
				{Name: "etablissement", Label: "Établissement"},
				{Name: "diplome", Label: "Diplôme"},
				{Name: "dateDebut", Label: "Date de début", Hint: "AAAA-MM-JJ"},
				{Name: "dateFin", Label: "Date de fin", Hint: "AAAA-MM-JJ"},
			},
			Resource: b.ProfessionalTrainings,
			ID:       func(t professionaltraining.ProfessionalTraining) int64 { return t.ID },
			List:     func(s store.DataState) []professionaltraining.ProfessionalTraining { return s.ProfessionalTrainings },
			Set:      data.SetProfessionalTrainings,
			Update:   data.UpdateProfessionalTraining,
			Delete:   data.DeleteProfessionalTraining,
			State:    func(s store.UIState) store.FeatureState[professionaltraining.ProfessionalTraining] { return s.ProfessionalTraining },
			Open:     ui.OpenProfessionalTraining,
			Close:    ui.CloseProfessionalTraining,
			SetRow:   ui.SetProfessionalTrainingCurrentRow,
		}, data, ui, st),
	}
}
