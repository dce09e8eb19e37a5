package postgresql

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var disciplinaryActionColumns = columnSet{
	table:  "disciplinary_actions",
	fields: disciplinaryaction.Fields,
	kinds: map[string]columnKind{
		"information_sheet_id": kindNullableInt,
		"date_decision":        kindDate,
	},
}

func NewDisciplinaryActionRepository(db *database.DB) disciplinaryaction.DisciplinaryActionRepository {
	return &subRecordRepository[disciplinaryaction.DisciplinaryAction]{
		db:       db,
		columns:  disciplinaryActionColumns,
		scan:     scanDisciplinaryAction,
		notFound: disciplinaryaction.ErrDisciplinaryActionNotFound,
	}
}

func scanDisciplinaryAction(row pgx.Row) (disciplinaryaction.DisciplinaryAction, error) {
	var a disciplinaryaction.DisciplinaryAction
	err := row.Scan(
		&a.ID,
		&a.InformationSheetID,
		&a.TypeSanction,
		&a.Classification,
		&a.ReferenceDecision,
		&a.DateDecision,
		&a.Motif,
	)
	return a, err
}
