// Package accounts is the credential store accessor: a narrow data-access
// seam over the accounts table with no business rules of its own.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository defines the account operations the account service relies on.
// Emails passed in are expected to be normalized already.
type Repository interface {
	// FindByEmail returns common.ErrorNotFound when no account has email.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// FindByID returns common.ErrorNotFound when id is unknown.
	FindByID(ctx context.Context, id string) (*models.Account, error)

	// Insert creates an account with a fresh id and a zero failure counter.
	// It returns common.ErrDuplicateEmail when the email is already taken,
	// including when a concurrent insert won the race.
	Insert(ctx context.Context, fullName, email, passwordHash string) (*models.Account, error)

	// UpdateFailedLoginCount sets the counter unconditionally (last writer wins).
	UpdateFailedLoginCount(ctx context.Context, id string, count int) error

	// IncrementFailedLoginCount adds one to the counter in a single statement
	// and returns the new value.
	IncrementFailedLoginCount(ctx context.Context, id string) (int, error)
}
