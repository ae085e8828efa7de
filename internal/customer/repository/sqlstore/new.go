package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"cseboard/internal/customer/repository"
	"cseboard/pkg/log"
	"cseboard/pkg/metrics"
)

// DefaultTable is the table name of the production dashboard.
const DefaultTable = "Dashboard_With_ARR"

// Options configures the SQL-backed Repository.
type Options struct {
	// Driver is one of the pkg/database driver names.
	Driver string
	// Table may be schema-qualified, e.g. "Dashboard.dbo.Dashboard_With_ARR".
	Table   string
	Metrics metrics.Recorder
}

type implRepository struct {
	db      *sql.DB
	l       log.Logger
	dialect dialect
	table   string
	metrics metrics.Recorder
}

// New creates a database/sql-backed Repository for customer records.
func New(db *sql.DB, l log.Logger, opt Options) (repository.Repository, error) {
	if db == nil {
		panic("customer/repository/sqlstore: db is required")
	}

	d, err := dialectFor(opt.Driver)
	if err != nil {
		return nil, err
	}

	table := opt.Table
	if table == "" {
		table = DefaultTable
	}
	quoted, err := d.quoteTable(table)
	if err != nil {
		return nil, err
	}

	rec := opt.Metrics
	if rec == nil {
		rec = metrics.Nop()
	}

	return &implRepository{db: db, l: l, dialect: d, table: quoted, metrics: rec}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("customer/repository/sqlstore.%s", method)
}

func (r *implRepository) observe(operation string, start time.Time) {
	r.metrics.ObserveStore(operation, time.Since(start))
}
