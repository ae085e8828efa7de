package sqlstore

import (
	"fmt"
	"slices"
	"strings"

	"cseboard/internal/customer"
	repo "cseboard/internal/customer/repository"
)

// selectColumns returns the quoted Org column followed by every attribute
// column, in the order records are scanned.
func (r *implRepository) selectColumns() string {
	cols := []string{r.dialect.quote(customer.ColumnOrg)}
	for _, c := range customer.AttributeColumns() {
		cols = append(cols, r.dialect.quote(c))
	}
	return strings.Join(cols, ", ")
}

// checkColumns rejects empty or unknown column lists. Column names are
// interpolated, so only the fixed attribute names may pass.
func checkColumns(cols []customer.Column) error {
	if len(cols) == 0 {
		return repo.ErrNoColumns
	}
	known := customer.AttributeColumns()
	for _, c := range cols {
		if !slices.Contains(known, c.Name) {
			return fmt.Errorf("%w: %q", repo.ErrUnknownColumn, c.Name)
		}
	}
	return nil
}

// buildInsertQuery builds INSERT INTO t (Org, c1, ...) VALUES (p1, p2, ...).
func (r *implRepository) buildInsertQuery(opt repo.InsertRecordOptions) (string, []any) {
	names := []string{r.dialect.quote(customer.ColumnOrg)}
	params := []string{r.dialect.placeholder(1)}
	args := []any{opt.Org}

	for i, c := range opt.Columns {
		names = append(names, r.dialect.quote(c.Name))
		params = append(params, r.dialect.placeholder(i+2))
		args = append(args, c.Value)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.table, strings.Join(names, ", "), strings.Join(params, ", "))
	return query, args
}

// buildUpdateQuery builds UPDATE t SET c1 = p1, ... WHERE Org = pN.
// The Org argument goes last so positional placeholders line up with the
// textual order.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateRecordOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	for _, c := range opt.Columns {
		sets = append(sets, fmt.Sprintf("%s = %s", r.dialect.quote(c.Name), r.dialect.placeholder(idx)))
		args = append(args, c.Value)
		idx++
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		r.table, strings.Join(sets, ", "), r.dialect.quote(customer.ColumnOrg), r.dialect.placeholder(idx))
	args = append(args, opt.Org)
	return query, args
}
