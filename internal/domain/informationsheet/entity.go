package informationsheet

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
)

// InformationSheet is the primary employee record.
type InformationSheet struct {
	ID                 int64  `json:"id"`
	Matricule          string `json:"matricule"`
	NIN                string `json:"nin,omitempty"`
	Nom                string `json:"nom"`
	Prenom             string `json:"prenom"`
	DateNaissance      string `json:"dateNaissance"`
	LieuNaissance      string `json:"lieuNaissance,omitempty"`
	Adresse            string `json:"adresse,omitempty"`
	SituationFamiliale string `json:"situationFamiliale,omitempty"`
	Sexe               string `json:"sexe"`

	DateRecrutement string `json:"dateRecrutement"`
	TypeContrat     string `json:"typeContrat,omitempty"`
	Poste           string `json:"poste"`
	Groupe          string `json:"groupe,omitempty"`
	Classe          string `json:"classe,omitempty"`
	Echelon         string `json:"echelon,omitempty"`

	TypeDecision   string `json:"typeDecision,omitempty"`
	NumeroDecision string `json:"numeroDecision,omitempty"`
	DateDecision   string `json:"dateDecision,omitempty"`

	// Denormalized copies of the current bank / previous non-bank experience.
	AffectationBancaire  string `json:"affectationBancaire,omitempty"`
	PosteBancaire        string `json:"posteBancaire,omitempty"`
	DateDebutBancaire    string `json:"dateDebutBancaire,omitempty"`
	DateFinBancaire      string `json:"dateFinBancaire,omitempty"`
	OrganismeNonBancaire string `json:"organismeNonBancaire,omitempty"`
	PosteNonBancaire     string `json:"posteNonBancaire,omitempty"`
	DateDebutNonBancaire string `json:"dateDebutNonBancaire,omitempty"`
	DateFinNonBancaire   string `json:"dateFinNonBancaire,omitempty"`

	DisciplinaryActions []disciplinaryaction.DisciplinaryAction `json:"disciplinaryActions,omitempty"`
}

func (s *InformationSheet) EntityID() int64      { return s.ID }
func (s *InformationSheet) SetEntityID(id int64) { s.ID = id }

// FullName is "NOM Prenom" as printed on administrative documents.
func (s InformationSheet) FullName() string {
	if s.Prenom == "" {
		return s.Nom
	}
	return s.Nom + " " + s.Prenom
}

const (
	Male   = "M"
	Female = "F"
)

var Genders = []string{Male, Female}

var MaritalStatuses = []string{"celibataire", "marie", "divorce", "veuf"}

var ContractTypes = []string{"CDI", "CDD", "pre-emploi"}

var DecisionTypes = []string{"recrutement", "titularisation", "promotion", "mutation", "avancement"}

// DisciplinaryActionsField is the internal name of the embedded sanctions list.
const DisciplinaryActionsField = "disciplinaryActions"

var Fields = fields.NewTable("information_sheet",
	fields.F("id", "id"),
	fields.F("matricule", "matricule"),
	fields.F("nin", "nin"),
	fields.F("nom", "nom"),
	fields.F("prenom", "prenom"),
	fields.F("dateNaissance", "date_naissance"),
	fields.F("lieuNaissance", "lieu_naissance"),
	fields.F("adresse", "adresse"),
	fields.F("situationFamiliale", "situation_familiale"),
	fields.F("sexe", "sexe"),
	fields.F("dateRecrutement", "date_recrutement"),
	fields.F("typeContrat", "type_contrat"),
	fields.F("poste", "poste"),
	fields.F("groupe", "groupe"),
	fields.F("classe", "classe"),
	fields.F("echelon", "echelon"),
	fields.F("typeDecision", "type_decision"),
	fields.F("numeroDecision", "numero_decision"),
	fields.F("dateDecision", "date_decision"),
	fields.F("affectationBancaire", "affectation_bancaire"),
	fields.F("posteBancaire", "poste_bancaire"),
	fields.F("dateDebutBancaire", "date_debut_bancaire"),
	fields.F("dateFinBancaire", "date_fin_bancaire"),
	fields.F("organismeNonBancaire", "organisme_non_bancaire"),
	fields.F("posteNonBancaire", "poste_non_bancaire"),
	fields.F("dateDebutNonBancaire", "date_debut_non_bancaire"),
	fields.F("dateFinNonBancaire", "date_fin_non_bancaire"),
	fields.Nested(DisciplinaryActionsField, "disciplinary_actions", disciplinaryaction.Fields),
)
