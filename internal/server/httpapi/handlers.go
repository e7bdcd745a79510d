package httpapi

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

type signUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func toAuthResponse(s *models.Session) authResponse {
	return authResponse{
		AccessToken: s.Token,
		User:        userResponse{FullName: s.User.FullName, Email: s.User.Email},
	}
}

func (s *Server) signUp(c *fiber.Ctx) error {
	var body signUpRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := services.ValidateSignUp(body.FullName, body.Email, body.Password); err != nil {
		return err
	}

	ctx := userContext(c)
	session, err := s.accounts.Register(ctx, body.FullName, body.Email, body.Password)
	if err != nil {
		s.logOutcome(ctx, "Registration", body.Email, err)
		return err
	}

	s.logger.Info(ctx, "Registered", "email", session.User.Email)
	return c.Status(fiber.StatusCreated).JSON(toAuthResponse(session))
}

func (s *Server) signIn(c *fiber.Ctx) error {
	var body signInRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := services.ValidateSignIn(body.Email, body.Password); err != nil {
		return err
	}

	ctx := userContext(c)
	session, err := s.accounts.Login(ctx, body.Email, body.Password)
	if err != nil {
		s.logOutcome(ctx, "Login", body.Email, err)
		return err
	}

	s.logger.Info(ctx, "Logged in", "email", session.User.Email)
	return c.JSON(toAuthResponse(session))
}

func (s *Server) profile(c *fiber.Ctx) error {
	accountID, _ := c.Locals(accountIDLocal).(string)

	user, err := s.accounts.Profile(userContext(c), accountID)
	if err != nil {
		return err
	}

	return c.JSON(userResponse{FullName: user.FullName, Email: user.Email})
}

func (s *Server) logOutcome(ctx context.Context, op, email string, err error) {
	if errors.Is(err, common.ErrorInternal) {
		s.logger.Error(ctx, op+" failed", "email", email, "error", err)
		return
	}
	s.logger.Info(ctx, op+" rejected", "email", email, "reason", err.Error())
}
