package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// describe turns client errors into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrorNotFound):
		return "session is no longer valid, please log in again"
	default:
		return err.Error()
	}
}

func (a *App) saveSession(s *client.Session) error {
	if err := a.store.Save(s.Token); err != nil {
		return err
	}
	a.printf("Logged in as %s (%s)\n", s.FullName, s.Email)
	return nil
}

func (a *App) Register(ctx context.Context) error {

	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return err
	}

	if password != confirm {
		a.printf("Passwords do not match\n")
		return errors.New("passwords do not match")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.client.Register(ctx, fullName, email, password)
	if err != nil {
		a.printf("Registration failed: %s\n", describe(err))
		return err
	}

	return a.saveSession(s)
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.printf("Login failed: %s\n", describe(err))
		return err
	}

	return a.saveSession(s)
}

func (a *App) Profile(ctx context.Context) error {

	token, err := a.store.Load()
	if err != nil {
		a.printf("Not logged in\n")
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Profile(ctx, token)
	if err != nil {
		a.printf("Profile failed: %s\n", describe(err))
		return err
	}

	a.printf("Full name: %s\nEmail: %s\n", u.FullName, u.Email)
	return nil
}

// Status reports the locally stored session without contacting the server.
func (a *App) Status(ctx context.Context) error {

	token, err := a.store.Load()
	if errors.Is(err, session.ErrNoSession) {
		a.printf("Not logged in\n")
		return nil
	}
	if err != nil {
		return err
	}

	p, err := session.ParsePayload(token)
	if err != nil {
		a.printf("Stored session is unreadable, please log in again\n")
		return nil
	}

	if !session.IsLoggedIn(token, a.now()) {
		a.printf("Session for %s expired at %s\n", p.Email, p.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	}

	a.printf("Logged in as %s until %s\n", p.Email, p.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Delete(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.printf("Logged out\n")
	return nil
}

func (a *App) Ping(ctx context.Context) error {

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.printf("Server %s is not reachable: %s\n", a.config.ServerEndpointAddr, describe(err))
		return err
	}

	a.printf("Server %s is up\n", a.config.ServerEndpointAddr)
	return nil
}
