// Package services contains server-side business logic. This file implements
// AccountService, which registers accounts, verifies logins against the
// three-strike lockout rule, and issues signed session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

const (
	// LockoutThreshold is the failed-login count at which an account stops
	// accepting login attempts.
	LockoutThreshold = 3

	MinPasswordLength = 6
)

// PasswordHasher is the one-way hash used for stored passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenSigner turns session claims into an opaque bearer token.
type TokenSigner interface {
	Sign(claims models.SessionClaims) (string, error)
}

// AccountService provides authentication operations:
// - Register: create an account and open a session
// - Login: check lockout state and password, maintain the failure counter
// - Profile: resolve a token subject to its public user data
// - Unlock: administrative reset of the failure counter
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	signer      TokenSigner
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, signer TokenSigner) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		signer:      signer,
	}
}

// NormalizeEmail returns the form of email used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// internal marks err as an infrastructure failure while keeping the cause.
func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrorInternal, op, err)
}

// Register creates an account and returns a session for it. fullName and the
// email syntax are expected to be validated by the caller (see ValidateSignUp).
func (s *AccountService) Register(ctx context.Context, fullName, email, password string) (*models.Session, error) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, common.ErrWeakPassword
	}

	email = NormalizeEmail(email)

	var account *models.Account
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		_, err := repo.FindByEmail(ctx, email)
		if err == nil {
			return common.ErrEmailTaken
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return internal("find account", err)
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return internal("hash password", err)
		}

		account, err = repo.Insert(ctx, fullName, email, hash)
		if err != nil {
			// lost a race against a concurrent registration
			if errors.Is(err, common.ErrDuplicateEmail) {
				return common.ErrEmailTaken
			}
			return internal("insert account", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrorInternal) {
			return nil, err
		}
		// begin/commit failures
		return nil, internal("register", err)
	}

	return s.issueSession(account)
}

// Login evaluates one login attempt. The checks run in a fixed order:
// unknown email, lockout, password. A wrong password persists the incremented
// failure counter before returning ErrWrongPassword; a correct one resets it.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownEmail
		}
		return nil, internal("find account", err)
	}

	if account.IsLocked(LockoutThreshold) {
		return nil, common.ErrAccountLocked
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, internal("verify password", err)
	}

	if !ok {
		if _, err := repo.IncrementFailedLoginCount(ctx, account.ID); err != nil {
			return nil, internal("increment failed login count", err)
		}
		return nil, common.ErrWrongPassword
	}

	if err := repo.UpdateFailedLoginCount(ctx, account.ID, 0); err != nil {
		return nil, internal("reset failed login count", err)
	}
	account.FailedLoginCount = 0

	return s.issueSession(account)
}

// Profile returns the public data of the account a session token was issued
// for. It returns common.ErrorNotFound when the account no longer exists.
func (s *AccountService) Profile(ctx context.Context, accountID string) (*models.SessionUser, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, internal("find account", err)
	}

	return &models.SessionUser{FullName: account.FullName, Email: account.Email}, nil
}

// Unlock clears the failure counter of the account registered under email.
func (s *AccountService) Unlock(ctx context.Context, email string) error {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUnknownEmail
		}
		return internal("find account", err)
	}

	if err := repo.UpdateFailedLoginCount(ctx, account.ID, 0); err != nil {
		return internal("reset failed login count", err)
	}

	return nil
}

func (s *AccountService) issueSession(a *models.Account) (*models.Session, error) {
	token, err := s.signer.Sign(models.SessionClaims{Subject: a.ID, Email: a.Email})
	if err != nil {
		return nil, internal("sign token", err)
	}

	return &models.Session{
		Token: token,
		User:  models.SessionUser{FullName: a.FullName, Email: a.Email},
	}, nil
}
