package postgresql

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var nonBankExperienceColumns = columnSet{
	table:  "non_bank_experiences",
	fields: nonbankexperience.Fields,
	kinds: map[string]columnKind{
		"information_sheet_id": kindNullableInt,
		"date_debut":           kindDate,
		"date_fin":             kindDate,
	},
}

func NewNonBankExperienceRepository(db *database.DB) nonbankexperience.NonBankExperienceRepository {
	return &subRecordRepository[nonbankexperience.NonBankExperience]{
		db:       db,
		columns:  nonBankExperienceColumns,
		scan:     scanNonBankExperience,
		notFound: nonbankexperience.ErrNonBankExperienceNotFound,
	}
}

func scanNonBankExperience(row pgx.Row) (nonbankexperience.NonBankExperience, error) {
	var e nonbankexperience.NonBankExperience
	err := row.Scan(
		&e.ID,
		&e.InformationSheetID,
		&e.Organisme,
		&e.Secteur,
		&e.Poste,
		&e.DateDebut,
		&e.DateFin,
	)
	return e, err
}
