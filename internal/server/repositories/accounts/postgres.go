package accounts

import "github.com/dmitrijs2005/gophauth/internal/dbx"

type PostgresRepository struct {
	sqlRepository
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{sqlRepository{db: db, q: queries{
		findByEmail: `SELECT id, full_name, email, password_hash, failed_login_count, created_at
		 FROM accounts
		 WHERE email = $1
		 `,
		findByID: `SELECT id, full_name, email, password_hash, failed_login_count, created_at
		 FROM accounts
		 WHERE id = $1
		 `,
		insert: `INSERT INTO accounts (id, full_name, email, password_hash, failed_login_count, created_at)
		 VALUES ($1, $2, $3, $4, 0, $5)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id
		 `,
		setCount: `UPDATE accounts SET failed_login_count = $1
		 WHERE id = $2
		 `,
		incCount: `UPDATE accounts SET failed_login_count = failed_login_count + 1
		 WHERE id = $1
		 RETURNING failed_login_count
		 `,
	}}}
}
