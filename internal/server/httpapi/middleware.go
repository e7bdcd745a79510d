package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const accountIDLocal = "accountID"

// requireToken verifies the "Authorization: Bearer <token>" header and stores
// the token subject in the request locals.
func (s *Server) requireToken(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	claims, err := s.verifier.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}

	c.Locals(accountIDLocal, claims.Subject)
	return c.Next()
}
