// Package records serves the sub-records of an information sheet: bank and
// non-bank experiences, disciplinary actions and professional trainings.
package records

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/bankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/nonbankexperience"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/professionaltraining"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service[T record.Validatable] interface {
	List(ctx context.Context, filter record.Filter) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, patch fields.Patch) (T, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl[T record.Validatable] struct {
	repo  record.Repository[T]
	table *fields.Table
	// conflict is returned on a unique violation, nil when the table has
	// no unique column.
	conflict error
}

func NewService[T record.Validatable](repo record.Repository[T], table *fields.Table, conflict error) Service[T] {
	return &serviceImpl[T]{repo: repo, table: table, conflict: conflict}
}

func (s *serviceImpl[T]) List(ctx context.Context, filter record.Filter) ([]T, error) {
	return s.repo.List(ctx, filter)
}

func (s *serviceImpl[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *serviceImpl[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := item.Validate(); err != nil {
		return zero, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return zero, s.mapError(err)
	}
	return created, nil
}

// Update validates the record as it will be after the patch, then stores
// only the patched columns.
func (s *serviceImpl[T]) Update(ctx context.Context, id int64, patch fields.Patch) (T, error) {
	var zero T
	if err := s.table.Check(patch); err != nil {
		return zero, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	merged, err := fields.Merge(s.table, current, patch)
	if err != nil {
		return zero, err
	}
	if err := merged.Validate(); err != nil {
		return zero, err
	}
	if len(patch) == 0 {
		return current, nil
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return zero, s.mapError(err)
	}
	return updated, nil
}

func (s *serviceImpl[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *serviceImpl[T]) mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if s.conflict != nil {
				return s.conflict
			}
		case "23503": // foreign_key_violation
			return informationsheet.ErrInformationSheetNotFound
		}
	}
	return err
}

// RecordsService groups the services of every sub-record kind.
type RecordsService struct {
	BankExperiences       Service[bankexperience.BankExperience]
	NonBankExperiences    Service[nonbankexperience.NonBankExperience]
	DisciplinaryActions   Service[disciplinaryaction.DisciplinaryAction]
	ProfessionalTrainings Service[professionaltraining.ProfessionalTraining]
}

func NewRecordsService(
	bankRepo bankexperience.BankExperienceRepository,
	nonBankRepo nonbankexperience.NonBankExperienceRepository,
	actionRepo disciplinaryaction.DisciplinaryActionRepository,
	trainingRepo professionaltraining.ProfessionalTrainingRepository,
) *RecordsService {
	return &RecordsService{
		BankExperiences:       NewService[bankexperience.BankExperience](bankRepo, bankexperience.Fields, nil),
		NonBankExperiences:    NewService[nonbankexperience.NonBankExperience](nonBankRepo, nonbankexperience.Fields, nil),
		DisciplinaryActions:   NewService[disciplinaryaction.DisciplinaryAction](actionRepo, disciplinaryaction.Fields, disciplinaryaction.ErrReferenceExists),
		ProfessionalTrainings: NewService[professionaltraining.ProfessionalTraining](trainingRepo, professionaltraining.Fields, nil),
	}
}
