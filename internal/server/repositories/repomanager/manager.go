package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open connects to the database named by driver and dsn and returns the
// RepositoryManager for its dialect. Accepted drivers are "pgx" (alias
// "postgres") and "sqlite".
func Open(driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var m RepositoryManager

	switch driver {
	case "pgx", "postgres":
		driver = "pgx"
		m = &PostgresRepositoryManager{}
	case "sqlite":
		m = &SQLiteRepositoryManager{}
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// a single connection serializes writers and keeps in-memory databases alive
		db.SetMaxOpenConns(1)
	}

	return db, m, nil
}
