package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/jackc/pgx/v5"
)

var informationSheetColumns = columnSet{
	table:  "information_sheets",
	fields: informationsheet.Fields,
	kinds: map[string]columnKind{
		"nin":                     kindNullableText,
		"date_naissance":          kindDate,
		"date_recrutement":        kindDate,
		"date_decision":           kindDate,
		"date_debut_bancaire":     kindDate,
		"date_fin_bancaire":       kindDate,
		"date_debut_non_bancaire": kindDate,
		"date_fin_non_bancaire":   kindDate,
	},
}

type informationSheetRepositoryImpl struct {
	db *database.DB
}

func NewInformationSheetRepository(db *database.DB) informationsheet.InformationSheetRepository {
	return &informationSheetRepositoryImpl{db: db}
}

func scanInformationSheet(row pgx.Row) (informationsheet.InformationSheet, error) {
	var s informationsheet.InformationSheet
	err := row.Scan(
		&s.ID,
		&s.Matricule,
		&s.NIN,
		&s.Nom,
		&s.Prenom,
		&s.DateNaissance,
		&s.LieuNaissance,
		&s.Adresse,
		&s.SituationFamiliale,
		&s.Sexe,
		&s.DateRecrutement,
		&s.TypeContrat,
		&s.Poste,
		&s.Groupe,
		&s.Classe,
		&s.Echelon,
		&s.TypeDecision,
		&s.NumeroDecision,
		&s.DateDecision,
		&s.AffectationBancaire,
		&s.PosteBancaire,
		&s.DateDebutBancaire,
		&s.DateFinBancaire,
		&s.OrganismeNonBancaire,
		&s.PosteNonBancaire,
		&s.DateDebutNonBancaire,
		&s.DateFinNonBancaire,
	)
	return s, err
}

// List implements informationsheet.InformationSheetRepository.
func (r *informationSheetRepositoryImpl) List(ctx context.Context) ([]informationsheet.InformationSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM information_sheets ORDER BY id ASC`, informationSheetColumns.selectList())

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list information sheets: %w", err)
	}
	defer rows.Close()

	sheets := []informationsheet.InformationSheet{}
	for rows.Next() {
		s, err := scanInformationSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan information sheet: %w", err)
		}
		sheets = append(sheets, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sheets, nil
}

// GetByID implements informationsheet.InformationSheetRepository.
func (r *informationSheetRepositoryImpl) GetByID(ctx context.Context, id int64) (informationsheet.InformationSheet, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM information_sheets WHERE id = $1`, informationSheetColumns.selectList())

	s, err := scanInformationSheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return informationsheet.InformationSheet{}, informationsheet.ErrInformationSheetNotFound
		}
		return informationsheet.InformationSheet{}, fmt.Errorf("failed to get information sheet: %w", err)
	}
	return s, nil
}

// Create implements informationsheet.InformationSheetRepository.
func (r *informationSheetRepositoryImpl) Create(ctx context.Context, sheet informationsheet.InformationSheet) (informationsheet.InformationSheet, error) {
	q := GetQuerier(ctx, r.db)

	wire, err := fields.ToWireObject(informationsheet.Fields, sheet)
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}
	query, args, err := informationSheetColumns.buildInsert(wire)
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}

	created, err := scanInformationSheet(q.QueryRow(ctx, query, args...))
	if err != nil {
		return informationsheet.InformationSheet{}, fmt.Errorf("failed to create information sheet: %w", err)
	}
	return created, nil
}

// Update implements informationsheet.InformationSheetRepository.
func (r *informationSheetRepositoryImpl) Update(ctx context.Context, id int64, patch fields.Patch) (informationsheet.InformationSheet, error) {
	q := GetQuerier(ctx, r.db)

	query, args, err := informationSheetColumns.buildUpdate(id, patch)
	if err != nil {
		return informationsheet.InformationSheet{}, err
	}

	updated, err := scanInformationSheet(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return informationsheet.InformationSheet{}, informationsheet.ErrInformationSheetNotFound
		}
		return informationsheet.InformationSheet{}, fmt.Errorf("failed to update information sheet: %w", err)
	}
	return updated, nil
}

// Delete implements informationsheet.InformationSheetRepository.
func (r *informationSheetRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM information_sheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete information sheet: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return informationsheet.ErrInformationSheetNotFound
	}

	return nil
}
