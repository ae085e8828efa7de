package database

import (
	"context"
	"errors"
	"testing"
)

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := Open(context.Background(), DefaultConfig(DriverSQLite, "file::memory:"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
		t.Fatalf("query: %v", err)
	}
	if one != 1 {
		t.Errorf("expected 1, got %d", one)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), DefaultConfig("oracle", "x"))
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), DefaultConfig(DriverSQLite, "")); err == nil {
		t.Error("expected error for empty dsn")
	}
}
