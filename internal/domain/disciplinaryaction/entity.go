package disciplinaryaction

import "github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"

type DisciplinaryAction struct {
	ID                 int64  `json:"id"`
	InformationSheetID *int64 `json:"informationSheetId,omitempty"`
	TypeSanction       string `json:"typeSanction"`
	Classification     string `json:"classification,omitempty"`
	ReferenceDecision  string `json:"referenceDecision"`
	DateDecision       string `json:"dateDecision"`
	Motif              string `json:"motif,omitempty"`
}

func (a *DisciplinaryAction) EntityID() int64      { return a.ID }
func (a *DisciplinaryAction) SetEntityID(id int64) { a.ID = id }

// Sanction degrees of the staff regulations.
const (
	FirstDegree  = "1er degre"
	SecondDegree = "2eme degre"
	ThirdDegree  = "3eme degre"
	FourthDegree = "4eme degre"
)

var Classifications = []string{FirstDegree, SecondDegree, ThirdDegree, FourthDegree}

var Fields = fields.NewTable("disciplinary_action",
	fields.F("id", "id"),
	fields.F("informationSheetId", "information_sheet_id"),
	fields.F("typeSanction", "type_sanction"),
	fields.F("classification", "classification"),
	fields.F("referenceDecision", "reference_decision"),
	fields.F("dateDecision", "date_decision"),
	fields.F("motif", "motif"),
)
