package postgresql

import (
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

var professionalTrainingColumns = columnSet{
	table:  "professional_trainings",
	fields: professionaltraining.Fields,
	kinds: map[string]columnKind{
		"information_sheet_id": kindNullableInt,
		"date_debut":           kindDate,
		"date_fin":             kindDate,
	},
}

func NewProfessionalTrainingRepository(db *database.DB) professionaltraining.ProfessionalTrainingRepository {
	return &subRecordRepository[professionaltraining.ProfessionalTraining]{
		db:       db,
		columns:  professionalTrainingColumns,
		scan:     scanProfessionalTraining,
		notFound: professionaltraining.ErrProfessionalTrainingNotFound,
	}
}

func scanProfessionalTraining(row pgx.Row) (professionaltraining.ProfessionalTraining, error) {
	var p professionaltraining.ProfessionalTraining
	err := row.Scan(
		&p.ID,
		&p.InformationSheetID,
		&p.Specialite,
		&p.Etablissement,
		&p.Diplome,
		&p.DateDebut,
		&p.DateFin,
	)
	return p, err
}
