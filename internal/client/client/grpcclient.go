package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/authrpc"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Session is what the server returns after a successful register or login.
type Session struct {
	Token    string
	FullName string
	Email    string
}

// User is the public profile of an account.
type User struct {
	FullName string
	Email    string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      authrpc.AuthServiceClient
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient creates a client for the server at endpointURL. Extra dial
// options are appended to the defaults (insecure transport).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      authrpc.NewAuthServiceClient(conn),
	}, nil
}

func toSession(r *authrpc.AuthResponse) *Session {
	return &Session{Token: r.AccessToken, FullName: r.User.FullName, Email: r.User.Email}
}

func (s *GRPCClient) Register(ctx context.Context, fullName, email, password string) (*Session, error) {

	req := &authrpc.RegisterRequest{FullName: fullName, Email: email, Password: password}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return toSession(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*Session, error) {

	req := &authrpc.LoginRequest{Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return toSession(resp), nil
}

func (s *GRPCClient) Profile(ctx context.Context, token string) (*User, error) {

	resp, err := s.client.Profile(withAccessToken(ctx, token), &authrpc.ProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &User{FullName: resp.User.FullName, Email: resp.User.Email}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &authrpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// domainErrors are recognised by the exact message the server sends.
var domainErrors = []error{
	common.ErrWeakPassword,
	common.ErrEmailTaken,
	common.ErrUnknownEmail,
	common.ErrAccountLocked,
	common.ErrWrongPassword,
	common.ErrTokenExpired,
	common.ErrInvalidToken,
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	for _, de := range domainErrors {
		if st.Message() == de.Error() {
			return de
		}
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidInput, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
