package repository

import "cseboard/internal/customer"

// GetOneRecordOptions holds the key for fetching a single Record.
type GetOneRecordOptions struct {
	Org string
}

// InsertRecordOptions holds the row to insert. Columns must not be empty.
type InsertRecordOptions struct {
	Org     string
	Columns []customer.Column
}

// UpdateRecordOptions holds the columns to set on the row keyed by Org.
// Columns not listed are left untouched.
type UpdateRecordOptions struct {
	Org     string
	Columns []customer.Column
}
