package professionaltraining

import "github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"

type ProfessionalTraining struct {
	ID                 int64  `json:"id"`
	InformationSheetID *int64 `json:"informationSheetId,omitempty"`
	Specialite         string `json:"specialite"`
	Etablissement      string `json:"etablissement"`
	Diplome            string `json:"diplome,omitempty"`
	DateDebut          string `json:"dateDebut"`
	DateFin            string `json:"dateFin,omitempty"`
}

func (p *ProfessionalTraining) EntityID() int64      { return p.ID }
func (p *ProfessionalTraining) SetEntityID(id int64) { p.ID = id }

var Fields = fields.NewTable("professional_training",
	fields.F("id", "id"),
	fields.F("informationSheetId", "information_sheet_id"),
	fields.F("specialite", "specialite"),
	fields.F("etablissement", "etablissement"),
	fields.F("diplome", "diplome"),
	fields.F("dateDebut", "date_debut"),
	fields.F("dateFin", "date_fin"),
)
