package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
)

var ErrUnknownCommand = errors.New("unknown command")

// AuthClient is the server API the CLI needs. *client.GRPCClient implements it.
type AuthClient interface {
	Register(ctx context.Context, fullName, email, password string) (*client.Session, error)
	Login(ctx context.Context, email, password string) (*client.Session, error)
	Profile(ctx context.Context, token string) (*client.User, error)
	Ping(ctx context.Context) error
	Close() error
}

// TokenStore keeps the access token between invocations.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
}

type App struct {
	config *config.Config
	client AuthClient
	store  TokenStore
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp connects to the configured server and uses the configured token file.
func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, session.NewFileStore(c.TokenFile), os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, ac AuthClient, ts TokenStore, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		client: ac,
		store:  ts,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
}

// Run executes the command in args[0], or starts the REPL when args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		a.printf("Welcome to gophauth CLI (type 'help' for commands)\n")
		runREPL(ctx, a, a.getStatus, a.reader, a.out)
		return nil
	}

	return a.exec(ctx, args[0])
}

func (a *App) exec(ctx context.Context, cmd string) error {
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "profile":
		return a.Profile(ctx)
	case "status":
		return a.Status(ctx)
	case "logout":
		return a.Logout(ctx)
	case "ping":
		return a.Ping(ctx)
	case "help":
		a.printf("Available commands: %s\n", commandList)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// getStatus is shown in the REPL prompt.
func (a *App) getStatus() string {
	token, err := a.store.Load()
	if err != nil || !session.IsLoggedIn(token, a.now()) {
		return ""
	}
	p, err := session.ParsePayload(token)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s)", p.Email)
}
