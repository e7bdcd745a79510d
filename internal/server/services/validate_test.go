package services

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestValidateSignUp(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		wantErr  string
	}{
		{"ok", "Ada", "Ada@X.com", "secret1", ""},
		{"short password is left to the engine", "Ada", "ada@x.com", "", ""},
		{"empty name", "  ", "ada@x.com", "secret1", "fullName should not be empty"},
		{"empty email", "Ada", "", "secret1", "email should not be empty"},
		{"bad email", "Ada", "ada.x.com", "secret1", "email must be an email"},
		{"display name", "Ada", "Ada <ada@x.com>", "secret1", "email must be an email"},
		{"too long", "Ada", "ada@x.com", strings.Repeat("a", MaxPasswordBytes+1), "at most 72 bytes"},
		{"max length", "Ada", "ada@x.com", strings.Repeat("a", MaxPasswordBytes), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignUp(tt.fullName, tt.email, tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSignIn(t *testing.T) {
	assert.NoError(t, ValidateSignIn("ada@x.com", "x"))
	assert.NoError(t, ValidateSignIn(" ada@x.com ", "x"))

	err := ValidateSignIn("ada@x.com", "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "password should not be empty")

	assert.ErrorIs(t, ValidateSignIn("nope", "secret1"), common.ErrInvalidInput)
}
