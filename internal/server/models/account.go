package models

import "time"

// Account is a registered credential record. Email is stored lower-cased and
// is unique across accounts.
type Account struct {
	ID               string    `db:"id"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	FailedLoginCount int       `db:"failed_login_count"`
	CreatedAt        time.Time `db:"created_at"`
}

// IsLocked reports whether the failure counter has reached threshold.
func (a *Account) IsLocked(threshold int) bool {
	return a.FailedLoginCount >= threshold
}
