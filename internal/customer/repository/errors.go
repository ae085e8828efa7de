package repository

import "errors"

var (
	ErrFailedToCheck  = errors.New("failed to check record")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrNoColumns      = errors.New("no columns to write")
	ErrUnknownColumn  = errors.New("unknown column")
)
