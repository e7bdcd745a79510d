package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
)

// queries holds the dialect-specific statements of a sqlRepository.
type queries struct {
	findByEmail string
	findByID    string
	insert      string
	setCount    string
	incCount    string
}

// sqlRepository implements Repository over database/sql; PostgresRepository
// and SQLiteRepository differ only in their statements.
type sqlRepository struct {
	db dbx.DBTX
	q  queries
}

func (r *sqlRepository) find(ctx context.Context, query string, arg string) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.FailedLoginCount, timestamp{&a.CreatedAt})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *sqlRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.find(ctx, r.q.findByEmail, email)
}

func (r *sqlRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.find(ctx, r.q.findByID, id)
}

func (r *sqlRepository) Insert(ctx context.Context, fullName, email, passwordHash string) (*models.Account, error) {
	a := &models.Account{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	var id string
	err := r.db.QueryRowContext(ctx, r.q.insert,
		a.ID, a.FullName, a.Email, a.PasswordHash, a.CreatedAt).Scan(&id)

	if err != nil {
		// ON CONFLICT DO NOTHING returns no row for a taken email.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *sqlRepository) UpdateFailedLoginCount(ctx context.Context, id string, count int) error {
	res, err := r.db.ExecContext(ctx, r.q.setCount, count, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *sqlRepository) IncrementFailedLoginCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, r.q.incCount, id).Scan(&count)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

// timestamp scans a column into a time.Time whether the driver hands back a
// time.Time (pgx, sqlite with a TIMESTAMP column) or its text form.
type timestamp struct {
	t *time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", s)
}
