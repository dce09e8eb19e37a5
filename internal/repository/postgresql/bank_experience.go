package postgresql

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var bankExperienceColumns = columnSet{
	table:  "bank_experiences",
	fields: bankexperience.Fields,
	kinds: map[string]columnKind{
		"information_sheet_id": kindNullableInt,
		"date_debut":           kindDate,
		"date_fin":             kindDate,
		"pbi":                  kindInt,
	},
}

func NewBankExperienceRepository(db *database.DB) bankexperience.BankExperienceRepository {
	return &subRecordRepository[bankexperience.BankExperience]{
		db:       db,
		columns:  bankExperienceColumns,
		scan:     scanBankExperience,
		notFound: bankexperience.ErrBankExperienceNotFound,
	}
}

func scanBankExperience(row pgx.Row) (bankexperience.BankExperience, error) {
	var e bankexperience.BankExperience
	err := row.Scan(
		&e.ID,
		&e.InformationSheetID,
		&e.Affectation,
		&e.Poste,
		&e.DateDebut,
		&e.DateFin,
		&e.PBI,
	)
	return e, err
}
