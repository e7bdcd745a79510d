// Package session keeps the client's access token between CLI invocations
// and reads the public claims out of it.
package session

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("not logged in")

// FileStore persists a single token in a file readable only by the owner.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(token string) error {
	if err := filex.WriteFileAtomic(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}

	return token, nil
}

// Delete removes the stored token. A missing file is not an error.
func (s *FileStore) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Payload is the unverified content of a session token.
type Payload struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParsePayload decodes the token without checking its signature. The client
// does not hold the signing key; the server remains the authority.
func ParsePayload(token string) (*Payload, error) {
	c := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	p := &Payload{Subject: c.Subject, Email: c.Email}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}

	return p, nil
}

// IsLoggedIn reports whether token looks usable at now: well formed and not
// past its expiry.
func IsLoggedIn(token string, now time.Time) bool {
	if token == "" {
		return false
	}

	p, err := ParsePayload(token)
	if err != nil {
		return false
	}

	return p.ExpiresAt.IsZero() || now.Before(p.ExpiresAt)
}
