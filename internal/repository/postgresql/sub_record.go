package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/record"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	"github.com/jackc/pgx/v5"
)

// subRecordRepository stores the records attached to an information sheet.
// The four sub-record tables share their shape, so one implementation
// serves all of them.
type subRecordRepository[T any] struct {
	db       *database.DB
	columns  columnSet
	scan     func(pgx.Row) (T, error)
	notFound error
}

func (r *subRecordRepository[T]) List(ctx context.Context, filter record.Filter) ([]T, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE ($1::bigint IS NULL OR information_sheet_id = $1)
		ORDER BY id ASC
	`, r.columns.selectList(), r.columns.table)

	rows, err := q.Query(ctx, query, filter.InformationSheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.columns.table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.columns.fields.Name(), err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (r *subRecordRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.columns.selectList(), r.columns.table)

	item, err := r.scan(q.QueryRow(ctx, query, id))
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, r.notFound
		}
		return zero, fmt.Errorf("failed to get %s: %w", r.columns.fields.Name(), err)
	}
	return item, nil
}

func (r *subRecordRepository[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	q := GetQuerier(ctx, r.db)

	wire, err := fields.ToWireObject(r.columns.fields, item)
	if err != nil {
		return zero, err
	}
	query, args, err := r.columns.buildInsert(wire)
	if err != nil {
		return zero, err
	}

	created, err := r.scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", r.columns.fields.Name(), err)
	}
	return created, nil
}

func (r *subRecordRepository[T]) Update(ctx context.Context, id int64, patch fields.Patch) (T, error) {
	var zero T
	q := GetQuerier(ctx, r.db)

	query, args, err := r.columns.buildUpdate(id, patch)
	if err != nil {
		return zero, err
	}

	updated, err := r.scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, r.notFound
		}
		return zero, fmt.Errorf("failed to update %s: %w", r.columns.fields.Name(), err)
	}
	return updated, nil
}

func (r *subRecordRepository[T]) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.columns.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.columns.fields.Name(), err)
	}

	if commandTag.RowsAffected() == 0 {
		return r.notFound
	}

	return nil
}
