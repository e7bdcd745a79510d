package services

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrInvalidInput, msg)
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email should not be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return invalid("email must be an email")
	}
	return nil
}

// ValidateSignUp checks the shape of a registration request before it reaches
// the engine. Password length policy is left to Register.
func ValidateSignUp(fullName, email, password string) error {
	if strings.TrimSpace(fullName) == "" {
		return invalid("fullName should not be empty")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(password) > MaxPasswordBytes {
		return invalid(fmt.Sprintf("password must be at most %d bytes long", MaxPasswordBytes))
	}
	return nil
}

// ValidateSignIn checks the shape of a login request.
func ValidateSignIn(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return invalid("password should not be empty")
	}
	return nil
}
