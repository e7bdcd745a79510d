package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Message string `json:"message"`
}

// statusFor maps service errors onto HTTP status codes and client messages.
func statusFor(err error) (int, string) {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrWeakPassword):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrEmailTaken):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, common.ErrUnknownEmail),
		errors.Is(err, common.ErrWrongPassword),
		errors.Is(err, common.ErrAccountLocked),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return fiber.StatusNotFound, err.Error()
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code, message := statusFor(err)
	if code == fiber.StatusInternalServerError {
		s.logger.Error(userContext(c), "Request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(errorResponse{Message: message})
}
