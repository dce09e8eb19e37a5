package nonbankexperience

import "github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"

// NonBankExperience is prior work history outside the bank.
type NonBankExperience struct {
	ID                 int64  `json:"id"`
	InformationSheetID *int64 `json:"informationSheetId,omitempty"`
	Organisme          string `json:"organisme"`
	Secteur            string `json:"secteur,omitempty"`
	Poste              string `json:"poste"`
	DateDebut          string `json:"dateDebut"`
	DateFin            string `json:"dateFin,omitempty"`
}

func (e *NonBankExperience) EntityID() int64      { return e.ID }
func (e *NonBankExperience) SetEntityID(id int64) { e.ID = id }

const (
	SectorPublic  = "public"
	SectorPrivate = "prive"
)

var Sectors = []string{SectorPublic, SectorPrivate}

var Fields = fields.NewTable("non_bank_experience",
	fields.F("id", "id"),
	fields.F("informationSheetId", "information_sheet_id"),
	fields.F("organisme", "organisme"),
	fields.F("secteur", "secteur"),
	fields.F("poste", "poste"),
	fields.F("dateDebut", "date_debut"),
	fields.F("dateFin", "date_fin"),
)
