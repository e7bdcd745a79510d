// Package auth holds the two cryptographic capabilities the account service
// depends on: signing session tokens and hashing passwords.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT body of a session token: the account id travels in "sub".
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Signer issues and verifies HS256 session tokens.
type Signer struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewSigner(secretKey []byte, validityDuration time.Duration) *Signer {
	return &Signer{secretKey: secretKey, validityDuration: validityDuration}
}

// Sign returns a token for c that expires after the signer's validity duration.
func (s *Signer) Sign(c models.SessionClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validityDuration)),
		},
		Email: c.Email,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry. Expired tokens yield
// common.ErrTokenExpired, every other failure common.ErrInvalidToken.
func (s *Signer) Verify(tokenString string) (*models.SessionClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return &models.SessionClaims{Subject: claims.Subject, Email: claims.Email}, nil
}
