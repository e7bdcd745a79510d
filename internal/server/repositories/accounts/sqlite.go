package accounts

import "github.com/dmitrijs2005/gophauth/internal/dbx"

type SQLiteRepository struct {
	sqlRepository
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{sqlRepository{db: db, q: queries{
		findByEmail: `SELECT id, full_name, email, password_hash, failed_login_count, created_at
		 FROM accounts
		 WHERE email = ?
		 `,
		findByID: `SELECT id, full_name, email, password_hash, failed_login_count, created_at
		 FROM accounts
		 WHERE id = ?
		 `,
		insert: `INSERT INTO accounts (id, full_name, email, password_hash, failed_login_count, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id
		 `,
		setCount: `UPDATE accounts SET failed_login_count = ?
		 WHERE id = ?
		 `,
		incCount: `UPDATE accounts SET failed_login_count = failed_login_count + 1
		 WHERE id = ?
		 RETURNING failed_login_count
		 `,
	}}}
}
