package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/accounts"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteRunsRealMigrations(t *testing.T) {
	db, m, err := Open("sqlite", "file:repomanager_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	_, ok := m.(*SQLiteRepositoryManager)
	require.True(t, ok, "unexpected manager type %T", m)

	ctx := context.Background()
	require.NoError(t, m.RunMigrations(ctx, db))
	// goose skips applied versions
	require.NoError(t, m.RunMigrations(ctx, db))

	repo := m.Accounts(db)
	_, isSQLite := repo.(*accounts.SQLiteRepository)
	assert.True(t, isSQLite)

	a, err := repo.Insert(ctx, "Ada", "ada@x.com", "hash")
	require.NoError(t, err)

	_, err = repo.Insert(ctx, "Ada 2", "ada@x.com", "hash")
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	got, err := repo.FindByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestOpen_PostgresAliases(t *testing.T) {
	orig := sqlOpen
	var gotDriver string
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		gotDriver = driver
		return orig("sqlite", "file:repomanager_alias?mode=memory")
	}
	defer func() { sqlOpen = orig }()

	for _, name := range []string{"pgx", "postgres"} {
		db, m, err := Open(name, "postgres://localhost/gophauth")
		require.NoError(t, err)
		_ = db.Close()

		assert.Equal(t, "pgx", gotDriver)
		_, ok := m.(*PostgresRepositoryManager)
		assert.True(t, ok, "driver %q: unexpected manager type %T", name, m)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, _, err := Open("mysql", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_SQLOpenError(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) { return nil, errors.New("boom") }
	defer func() { sqlOpen = orig }()

	_, _, err := Open("sqlite", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSQLiteRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewSQLiteRepositoryManager()
	err := m.RunMigrations(context.Background(), db)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "sqlite", gotDir)
}
