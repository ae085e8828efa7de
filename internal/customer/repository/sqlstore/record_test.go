package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cseboard/internal/customer"
	repo "cseboard/internal/customer/repository"
	"cseboard/pkg/database"
	"cseboard/pkg/log"
)

const testSchema = `
	CREATE TABLE "Dashboard_With_ARR" (
		"Org" TEXT NOT NULL,
		"CSE_Owner" TEXT,
		"Build_Version" TEXT,
		"Reason" TEXT,
		"Remedy" TEXT,
		"Upsell_Cross_sell_Opportunity" TEXT,
		"Churn_Risk" TEXT,
		"Health" TEXT,
		"ARR" TEXT
	)`

func newTestStore(t *testing.T) (*implRepository, *sql.DB) {
	t.Helper()

	cfg := database.DefaultConfig(database.DriverSQLite, filepath.Join(t.TempDir(), "cseboard.db"))
	db, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	r, err := New(db, log.NewNop(), Options{Driver: database.DriverSQLite})
	require.NoError(t, err)
	return r.(*implRepository), db
}

func TestStore_InsertAndGet(t *testing.T) {
	r, _ := newTestStore(t)
	ctx := context.Background()

	exists, err := r.Exists(ctx, "Acme")
	require.NoError(t, err)
	assert.False(t, exists)

	err = r.InsertRecord(ctx, repo.InsertRecordOptions{
		Org:     "Acme",
		Columns: []customer.Column{{Name: customer.ColumnHealth, Value: "Green"}},
	})
	require.NoError(t, err)

	exists, err = r.Exists(ctx, "Acme")
	require.NoError(t, err)
	assert.True(t, exists)

	rec, err := r.GetOneRecord(ctx, repo.GetOneRecordOptions{Org: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Org)
	require.NotNil(t, rec.Health)
	assert.Equal(t, "Green", *rec.Health)
	assert.Nil(t, rec.CSEOwner)
	assert.Nil(t, rec.BuildVersion)
	assert.Nil(t, rec.ChurnRisk)
}

func TestStore_GetNotFound(t *testing.T) {
	r, _ := newTestStore(t)

	rec, err := r.GetOneRecord(context.Background(), repo.GetOneRecordOptions{Org: "nonexistent"})
	require.NoError(t, err)
	assert.Empty(t, rec.Org)
}

func TestStore_OrgIsCaseSensitive(t *testing.T) {
	r, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, r.InsertRecord(ctx, repo.InsertRecordOptions{
		Org:     "Acme",
		Columns: []customer.Column{{Name: customer.ColumnHealth, Value: "Red"}},
	}))

	exists, err := r.Exists(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_UpdateLeavesOtherColumns(t *testing.T) {
	r, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, r.InsertRecord(ctx, repo.InsertRecordOptions{
		Org:     "Acme",
		Columns: []customer.Column{{Name: customer.ColumnCSEOwner, Value: "Anil"}},
	}))
	require.NoError(t, r.UpdateRecord(ctx, repo.UpdateRecordOptions{
		Org: "Acme",
		Columns: []customer.Column{
			{Name: customer.ColumnBuildVersion, Value: "2024.09"},
			{Name: customer.ColumnReason, Value: ""},
		},
	}))

	rec, err := r.GetOneRecord(ctx, repo.GetOneRecordOptions{Org: "Acme"})
	require.NoError(t, err)
	require.NotNil(t, rec.CSEOwner)
	assert.Equal(t, "Anil", *rec.CSEOwner)
	require.NotNil(t, rec.BuildVersion)
	assert.Equal(t, "2024.09", *rec.BuildVersion)
	require.NotNil(t, rec.Reason, "explicit empty string must be stored, not NULL")
	assert.Equal(t, "", *rec.Reason)
	assert.Nil(t, rec.Health)
}

func TestStore_ListOrgsDistinct(t *testing.T) {
	r, db := newTestStore(t)
	ctx := context.Background()

	// The table has no key constraint, so duplicates can exist at rest.
	for _, org := range []string{"A", "B", "A"} {
		_, err := db.Exec(`INSERT INTO "Dashboard_With_ARR" ("Org") VALUES (?)`, org)
		require.NoError(t, err)
	}

	orgs, err := r.ListOrgs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, orgs)
}

func TestStore_ListOrgsEmpty(t *testing.T) {
	r, _ := newTestStore(t)

	orgs, err := r.ListOrgs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orgs)
	assert.Empty(t, orgs)
}

func TestStore_RejectsBadColumns(t *testing.T) {
	r, _ := newTestStore(t)
	ctx := context.Background()

	err := r.InsertRecord(ctx, repo.InsertRecordOptions{Org: "Acme"})
	assert.ErrorIs(t, err, repo.ErrNoColumns)

	err = r.UpdateRecord(ctx, repo.UpdateRecordOptions{
		Org:     "Acme",
		Columns: []customer.Column{{Name: "ARR", Value: "1"}},
	})
	assert.ErrorIs(t, err, repo.ErrUnknownColumn)
}

func TestStore_ErrorsWrapCause(t *testing.T) {
	r, db := newTestStore(t)
	db.Close()

	_, err := r.Exists(context.Background(), "Acme")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrFailedToCheck))
	assert.Contains(t, err.Error(), "database is closed")
}

func TestBuildQueries(t *testing.T) {
	cols := []customer.Column{
		{Name: customer.ColumnCSEOwner, Value: "Anil"},
		{Name: customer.ColumnHealth, Value: "Green"},
	}

	tests := []struct {
		name       string
		dialect    dialect
		table      string
		wantInsert string
		wantUpdate string
	}{
		{
			name:       "postgres",
			dialect:    postgresDialect,
			table:      "Dashboard_With_ARR",
			wantInsert: `INSERT INTO "Dashboard_With_ARR" ("Org", "CSE_Owner", "Health") VALUES ($1, $2, $3)`,
			wantUpdate: `UPDATE "Dashboard_With_ARR" SET "CSE_Owner" = $1, "Health" = $2 WHERE "Org" = $3`,
		},
		{
			name:       "sqlite",
			dialect:    sqliteDialect,
			table:      "Dashboard_With_ARR",
			wantInsert: `INSERT INTO "Dashboard_With_ARR" ("Org", "CSE_Owner", "Health") VALUES (?, ?, ?)`,
			wantUpdate: `UPDATE "Dashboard_With_ARR" SET "CSE_Owner" = ?, "Health" = ? WHERE "Org" = ?`,
		},
		{
			name:       "sqlserver",
			dialect:    sqlServerDialect,
			table:      "Dashboard.dbo.Dashboard_With_ARR",
			wantInsert: `INSERT INTO [Dashboard].[dbo].[Dashboard_With_ARR] ([Org], [CSE_Owner], [Health]) VALUES (@p1, @p2, @p3)`,
			wantUpdate: `UPDATE [Dashboard].[dbo].[Dashboard_With_ARR] SET [CSE_Owner] = @p1, [Health] = @p2 WHERE [Org] = @p3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tt.dialect.quoteTable(tt.table)
			require.NoError(t, err)
			r := &implRepository{dialect: tt.dialect, table: table}

			q, args := r.buildInsertQuery(repo.InsertRecordOptions{Org: "Acme", Columns: cols})
			assert.Equal(t, tt.wantInsert, q)
			assert.Equal(t, []any{"Acme", "Anil", "Green"}, args)

			q, args = r.buildUpdateQuery(repo.UpdateRecordOptions{Org: "Acme", Columns: cols})
			assert.Equal(t, tt.wantUpdate, q)
			assert.Equal(t, []any{"Anil", "Green", "Acme"}, args)
		})
	}
}

func TestNew_Validation(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = New(db, log.NewNop(), Options{Driver: "oracle"})
	assert.ErrorIs(t, err, database.ErrUnsupportedDriver)

	_, err = New(db, log.NewNop(), Options{Driver: database.DriverSQLite, Table: "t; DROP TABLE x"})
	assert.Error(t, err)

	assert.Panics(t, func() { New(nil, log.NewNop(), Options{}) })
}
