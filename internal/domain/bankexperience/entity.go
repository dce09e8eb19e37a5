package bankexperience

import "github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"

// BankExperience is an assignment held inside the bank.
type BankExperience struct {
	ID                 int64  `json:"id"`
	InformationSheetID *int64 `json:"informationSheetId,omitempty"`
	Affectation        string `json:"affectation"`
	Poste              string `json:"poste"`
	DateDebut          string `json:"dateDebut"`
	DateFin            string `json:"dateFin,omitempty"`
	PBI                int    `json:"pbi"`
}

func (e *BankExperience) EntityID() int64      { return e.ID }
func (e *BankExperience) SetEntityID(id int64) { e.ID = id }

var Fields = fields.NewTable("bank_experience",
	fields.F("id", "id"),
	fields.F("informationSheetId", "information_sheet_id"),
	fields.F("affectation", "affectation"),
	fields.F("poste", "poste"),
	fields.F("dateDebut", "date_debut"),
	fields.F("dateFin", "date_fin"),
	fields.F("pbi", "pbi"),
)
