package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cseboard/internal/customer"
	repo "cseboard/internal/customer/repository"
)

// Exists reports whether a row keyed by org is present.
func (r *implRepository) Exists(ctx context.Context, org string) (bool, error) {
	defer r.observe("exists", time.Now())

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = %s",
		r.table, r.dialect.quote(customer.ColumnOrg), r.dialect.placeholder(1))

	var count int
	if err := r.db.QueryRowContext(ctx, query, org).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Exists"), err)
		return false, fmt.Errorf("%w: %w", repo.ErrFailedToCheck, err)
	}
	return count > 0, nil
}

// GetOneRecord retrieves the row keyed by opt.Org.
// Returns zero-value Record (Org == "") when not found, with no error.
func (r *implRepository) GetOneRecord(ctx context.Context, opt repo.GetOneRecordOptions) (customer.Record, error) {
	defer r.observe("get", time.Now())

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		r.selectColumns(), r.table, r.dialect.quote(customer.ColumnOrg), r.dialect.placeholder(1))

	attrs := customer.AttributeColumns()
	values := make([]sql.NullString, len(attrs))
	dest := make([]any, 0, len(attrs)+1)

	var rec customer.Record
	dest = append(dest, &rec.Org)
	for i := range values {
		dest = append(dest, &values[i])
	}

	err := r.db.QueryRowContext(ctx, query, opt.Org).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return customer.Record{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRecord"), err)
		return customer.Record{}, fmt.Errorf("%w: %w", repo.ErrFailedToGet, err)
	}

	for i, col := range attrs {
		if values[i].Valid {
			rec.Set(col, customer.Ptr(values[i].String))
		}
	}
	return rec, nil
}

// ListOrgs returns every distinct Org in store order.
func (r *implRepository) ListOrgs(ctx context.Context) ([]string, error) {
	defer r.observe("list", time.Now())

	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s", r.dialect.quote(customer.ColumnOrg), r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrgs"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	orgs := []string{}
	for rows.Next() {
		var org string
		if err := rows.Scan(&org); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOrgs"), err)
			return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOrgs"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return orgs, nil
}

// InsertRecord inserts a new row with Org plus the given columns.
func (r *implRepository) InsertRecord(ctx context.Context, opt repo.InsertRecordOptions) error {
	if err := checkColumns(opt.Columns); err != nil {
		return err
	}
	defer r.observe("insert", time.Now())

	query, args := r.buildInsertQuery(opt)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertRecord"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToInsert, err)
	}
	return nil
}

// UpdateRecord sets exactly the given columns on the row keyed by Org.
func (r *implRepository) UpdateRecord(ctx context.Context, opt repo.UpdateRecordOptions) error {
	if err := checkColumns(opt.Columns); err != nil {
		return err
	}
	defer r.observe("update", time.Now())

	query, args := r.buildUpdateQuery(opt)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRecord"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err)
	}
	return nil
}
