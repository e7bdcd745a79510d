// Package httpapi exposes the account service as a JSON REST API for browser
// clients: POST /signup, POST /signin and GET /profile.
package httpapi

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const shutdownTimeout = 5 * time.Second

// AccountService is the part of services.AccountService the API needs.
type AccountService interface {
	Register(ctx context.Context, fullName, email, password string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Profile(ctx context.Context, accountID string) (*models.SessionUser, error)
}

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*models.SessionClaims, error)
}

type Server struct {
	address  string
	accounts AccountService
	verifier TokenVerifier
	logger   logging.Logger
	app      *fiber.App
}

// NewServer builds the fiber application. corsOrigin is the single browser
// origin allowed to call the API with credentials.
func NewServer(a string, l logging.Logger, as AccountService, v TokenVerifier, corsOrigin string) *Server {
	s := &Server{
		address:  a,
		accounts: as,
		verifier: v,
		logger:   l.With("module", "http_server"),
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
		// credentials cannot be combined with a wildcard origin
		AllowCredentials: corsOrigin != "*",
	}))

	s.app.Post("/signup", s.signUp)
	s.app.Post("/signin", s.signIn)
	s.app.Get("/profile", s.requireToken, s.profile)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
		// unblocks Listener if shutdown ran before it started serving
		_ = ln.Close()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := s.app.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	<-stopped
	return nil
}
