package repository

import (
	"context"

	"cseboard/internal/customer"
)

// Repository is the composed interface for the customer record store.
type Repository interface {
	RecordRepository
}

// RecordRepository defines data access for the single table keyed by Org.
// Every method is one SQL statement.
type RecordRepository interface {
	Exists(ctx context.Context, org string) (bool, error)
	GetOneRecord(ctx context.Context, opt GetOneRecordOptions) (customer.Record, error)
	ListOrgs(ctx context.Context) ([]string, error)
	InsertRecord(ctx context.Context, opt InsertRecordOptions) error
	UpdateRecord(ctx context.Context, opt UpdateRecordOptions) error
}
