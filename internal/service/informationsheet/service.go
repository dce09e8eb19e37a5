package informationsheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/disciplinaryaction"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/jackc/pgx/v5/pgconn"
)

type InformationSheetService interface {
	List(ctx context.Context) ([]informationsheet.InformationSheet, error)
	Get(ctx context.Context, id int64) (informationsheet.InformationSheet, error)
	Create(ctx context.Context, sheet informationsheet.InformationSheet) (informationsheet.InformationSheet, error)
	Update(ctx context.Context, id int64, patch fields.Patch) (informationsheet.InformationSheet, error)
	Delete(ctx context.Context, id int64) error
}

// TxRunner runs fn in one transaction; repositories called with txCtx join it.
type TxRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

type informationSheetServiceImpl struct {
	sheetRepo  informationsheet.InformationSheetRepository
	actionRepo disciplinaryaction.DisciplinaryActionRepository
	inTx       TxRunner
}

func NewInformationSheetService(
	sheetRepo informationsheet.InformationSheetRepository,
	actionRepo disciplinaryaction.DisciplinaryActionRepository,
	inTx TxRunner,
) InformationSheetService {
	return &informationSheetServiceImpl{
		sheetRepo:  sheetRepo,
		actionRepo: actionRepo,
		inTx:       inTx,
	}
}

// List returns every sheet with its disciplinary actions embedded.
func (s *informationSheetServiceImpl) List(ctx context.Context) ([]informationsheet.InformationSheet, error) {
	sheets, err := s.sheetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	actions, err := s.actionRepo.List(ctx, record.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplinary actions: %w", err)
	}
	bySheet := make(map[int64][]disciplinaryaction.DisciplinaryAction)
	for _, a := range actions {
		if a.InformationSheetID != nil {
			bySheet[*a.InformationSheetID] = append(bySheet[*a.InformationSheetID], a)
		}
	}

	for i := range sheets {
		sheets[i].DisciplinaryActions = bySheet[sheets[i].ID]
	}
	return sheets, nil
}

func (s *informationSheetServiceImpl) Get(ctx context.Context, id int64) (informationsheet.InformationSheet, error) {
	sheet, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}
	if err := s.embedActions(ctx, &sheet); err != nil {
		return informationsheet.InformationSheet{}, err
	}
	return sheet, nil
}

// Create stores the sheet and any embedded disciplinary actions in one
// transaction.
func (s *informationSheetServiceImpl) Create(ctx context.Context, sheet informationsheet.InformationSheet) (informationsheet.InformationSheet, error) {
	if err := sheet.Validate(); err != nil {
		return informationsheet.InformationSheet{}, err
	}
	for _, a := range sheet.DisciplinaryActions {
		if err := a.Validate(); err != nil {
			return informationsheet.InformationSheet{}, fmt.Errorf("disciplinary action %q: %w", a.ReferenceDecision, err)
		}
	}

	var created informationsheet.InformationSheet
	err := s.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.sheetRepo.Create(txCtx, sheet)
		if err != nil {
			return mapSheetError(err)
		}
		for _, a := range sheet.DisciplinaryActions {
			a.ID = 0
			a.InformationSheetID = &created.ID
			stored, err := s.actionRepo.Create(txCtx, a)
			if err != nil {
				return mapActionError(err)
			}
			created.DisciplinaryActions = append(created.DisciplinaryActions, stored)
		}
		return nil
	})
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}
	return created, nil
}

// Update applies a partial change to the sheet's own columns. Disciplinary
// actions are changed through their own resource.
func (s *informationSheetServiceImpl) Update(ctx context.Context, id int64, patch fields.Patch) (informationsheet.InformationSheet, error) {
	if err := informationsheet.Fields.Check(patch); err != nil {
		return informationsheet.InformationSheet{}, err
	}
	if _, ok := patch[informationsheet.DisciplinaryActionsField]; ok {
		return informationsheet.InformationSheet{}, fmt.Errorf("%w: %s is managed through /disciplinary-actions",
			fields.ErrImmutableField, informationsheet.DisciplinaryActionsField)
	}

	current, err := s.sheetRepo.GetByID(ctx, id)
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}
	merged, err := fields.Merge(informationsheet.Fields, current, patch)
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}
	if err := merged.Validate(); err != nil {
		return informationsheet.InformationSheet{}, err
	}

	updated := current
	if len(patch) > 0 {
		updated, err = s.sheetRepo.Update(ctx, id, patch)
		if err != nil {
			return informationsheet.InformationSheet{}, mapSheetError(err)
		}
	}
	if err := s.embedActions(ctx, &updated); err != nil {
		return informationsheet.InformationSheet{}, err
	}
	return updated, nil
}

// Delete removes the sheet; its sub-records go with it.
func (s *informationSheetServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.sheetRepo.Delete(ctx, id)
}

func (s *informationSheetServiceImpl) embedActions(ctx context.Context, sheet *informationsheet.InformationSheet) error {
	actions, err := s.actionRepo.List(ctx, record.ForSheet(sheet.ID))
	if err != nil {
		return fmt.Errorf("failed to list disciplinary actions: %w", err)
	}
	if len(actions) > 0 {
		sheet.DisciplinaryActions = actions
	}
	return nil
}

func mapSheetError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "information_sheets_nin_key":
			return informationsheet.ErrNINExists
		default:
			return informationsheet.ErrMatriculeExists
		}
	}
	return err
}

func mapActionError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return disciplinaryaction.ErrReferenceExists
	}
	return err
}
